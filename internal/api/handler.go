package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/BerylCAtieno/nlvx-arena/internal/debate"
	"github.com/BerylCAtieno/nlvx-arena/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const DebatePath = "/api/debate"

// TurnGenerator is satisfied by *debate.Generator.
type TurnGenerator interface {
	GenerateTurn(ctx context.Context, req models.DebateRequest) (*models.DebateResponse, error)
}

type DebateHandler struct {
	generator TurnGenerator
	log       *zap.Logger
}

func NewDebateHandler(generator TurnGenerator, log *zap.Logger) *DebateHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DebateHandler{generator: generator, log: log}
}

// HandleDebate serves every method on the debate path so that preflight
// and method checks behave the same regardless of router configuration.
func (h *DebateHandler) HandleDebate(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req models.DebateRequest
	// An empty body decodes to an empty request and fails field validation.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("failed to decode debate request",
			zap.String("request_id", c.GetString(RequestIDHeader)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.generator.GenerateTurn(c.Request.Context(), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DebateHandler) sendError(c *gin.Context, err error) {
	var derr *debate.Error
	if !errors.As(err, &derr) {
		derr = &debate.Error{Kind: debate.KindInternal, Message: debate.MsgInternal, Details: err.Error(), Err: err}
	}

	status := statusFor(derr)
	h.log.Error("debate turn failed",
		zap.String("request_id", c.GetString(RequestIDHeader)),
		zap.Stringer("kind", derr.Kind),
		zap.Int("status", status),
		zap.Error(err))

	c.JSON(status, models.ErrorResponse{Error: derr.Message, Details: derr.Details})
}

func statusFor(derr *debate.Error) int {
	switch derr.Kind {
	case debate.KindBadRequest:
		return http.StatusBadRequest
	case debate.KindUpstreamFailure:
		if derr.Status >= 100 && derr.Status <= 999 {
			return derr.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleHealth reports liveness.
func HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
