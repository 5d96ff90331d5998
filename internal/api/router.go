package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(generator TurnGenerator, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(log), CORSMiddleware())

	h := NewDebateHandler(generator, log)
	router.Any(DebatePath, h.HandleDebate)
	router.GET("/health", HandleHealth)

	return router
}
