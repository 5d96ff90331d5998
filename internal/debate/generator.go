// Package debate generates a single persona-consistent debate turn.
package debate

import (
	"context"
	"errors"

	"github.com/BerylCAtieno/nlvx-arena/internal/llm"
	"github.com/BerylCAtieno/nlvx-arena/internal/models"
	"github.com/BerylCAtieno/nlvx-arena/internal/personas"
	"go.uber.org/zap"
)

const (
	Temperature = 0.7
	TopP        = 0.9
	MaxTokens   = 300

	// EmptyReply replaces a completion that came back without text.
	EmptyReply = "..."
)

type Options struct {
	// APIKey is consulted on every call; an empty result means misconfigured.
	APIKey     func() string
	NewClient  llm.Factory
	Model      string
	MaxContext int // bytes; 0 disables the check
	Logger     *zap.Logger
}

type Generator struct {
	apiKey     func() string
	newClient  llm.Factory
	model      string
	maxContext int
	log        *zap.Logger
}

func NewGenerator(opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	apiKey := opts.APIKey
	if apiKey == nil {
		apiKey = func() string { return "" }
	}
	return &Generator{
		apiKey:     apiKey,
		newClient:  opts.NewClient,
		model:      opts.Model,
		maxContext: opts.MaxContext,
		log:        log,
	}
}

// GenerateTurn returns the next debate message for req. All failures are
// returned as *Error.
func (g *Generator) GenerateTurn(ctx context.Context, req models.DebateRequest) (*models.DebateResponse, error) {
	if req.Topic == "" || req.DebaterType == "" || req.DebateLanguage == "" {
		return nil, &Error{Kind: KindBadRequest, Message: MsgMissingFields}
	}
	if g.maxContext > 0 && len(req.Context) > g.maxContext {
		return nil, &Error{Kind: KindBadRequest, Message: MsgContextTooLarge}
	}

	apiKey := g.apiKey()
	if apiKey == "" {
		return nil, &Error{Kind: KindMisconfigured, Message: MsgAPIKeyMissing}
	}

	systemPrompt, known := personas.SystemPrompt(req.DebaterType)
	if !known {
		g.log.Warn("unknown debater type, using fallback persona",
			zap.String("debater", req.DebaterType),
			zap.String("fallback", string(personas.Fallback)))
	}

	completion := llm.Request{
		System: systemPrompt,
		User:   buildUserMessage(req.Topic, req.DebaterType, req.DebateLanguage, req.Context),
		Params: llm.Params{
			Model:       g.model,
			Temperature: Temperature,
			TopP:        TopP,
			MaxTokens:   MaxTokens,
		},
	}

	text, err := g.newClient(apiKey).Complete(ctx, completion)
	if err != nil {
		return nil, g.classify(err)
	}
	if text == "" {
		text = EmptyReply
	}

	return &models.DebateResponse{
		Success: true,
		Message: text,
		Debater: req.DebaterType,
	}, nil
}

func (g *Generator) classify(err error) *Error {
	var statusErr *llm.StatusError
	switch {
	case errors.As(err, &statusErr):
		g.log.Error("upstream API error",
			zap.Int("status", statusErr.StatusCode),
			zap.String("body", statusErr.Body))
		return &Error{
			Kind:    KindUpstreamFailure,
			Status:  statusErr.StatusCode,
			Message: MsgGenerationFailed,
			Details: statusErr.Body,
			Err:     err,
		}
	case errors.Is(err, llm.ErrMalformedResponse):
		g.log.Error("upstream contract violation", zap.Error(err))
		return &Error{
			Kind:    KindUpstreamContractViolation,
			Message: MsgInternal,
			Details: MsgInvalidUpstreamRes,
			Err:     err,
		}
	default:
		g.log.Error("turn generation failed", zap.Error(err))
		return &Error{
			Kind:    KindInternal,
			Message: MsgInternal,
			Details: err.Error(),
			Err:     err,
		}
	}
}
