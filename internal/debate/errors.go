package debate

import "fmt"

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindMisconfigured
	KindUpstreamFailure
	KindUpstreamContractViolation
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindMisconfigured:
		return "Misconfigured"
	case KindUpstreamFailure:
		return "UpstreamFailure"
	case KindUpstreamContractViolation:
		return "UpstreamContractViolation"
	case KindInternal:
		return "Internal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single failure type returned by GenerateTurn.
// Status is only set for KindUpstreamFailure and holds the upstream status.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	MsgMissingFields      = "Missing required fields"
	MsgContextTooLarge    = "Context too large"
	MsgAPIKeyMissing      = "API key not configured"
	MsgGenerationFailed   = "Failed to generate response"
	MsgInternal           = "Internal server error"
	MsgInvalidUpstreamRes = "Invalid response structure from upstream API"
)
