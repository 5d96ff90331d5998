// Package llm defines the contract between the debate generator and the
// chat-completion backends.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when the upstream answered with a success
// status but without the expected completion structure.
var ErrMalformedResponse = errors.New("invalid response structure from upstream API")

// StatusError carries a non-2xx upstream reply verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream API error: %d - %s", e.StatusCode, e.Body)
}

// Params are the sampling settings sent with every completion.
type Params struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

type Request struct {
	System string
	User   string
	Params Params
}

// Completer produces the text of the first completion for a two-message
// (system, user) conversation.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Factory builds a Completer for a single invocation from the credential
// read at that invocation.
type Factory func(apiKey string) Completer
