// Package app wires configuration, the selected LLM backend and the HTTP router.
package app

import (
	"github.com/BerylCAtieno/nlvx-arena/internal/api"
	"github.com/BerylCAtieno/nlvx-arena/internal/config"
	"github.com/BerylCAtieno/nlvx-arena/internal/debate"
	"github.com/BerylCAtieno/nlvx-arena/internal/llm"
	"github.com/BerylCAtieno/nlvx-arena/internal/llm/gemini"
	"github.com/BerylCAtieno/nlvx-arena/internal/llm/groq"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewFactory(cfg *config.Config) llm.Factory {
	if cfg.Provider == config.ProviderGemini {
		return gemini.NewFactory()
	}
	return groq.NewFactory(cfg.BaseURL)
}

func NewGenerator(cfg *config.Config, factory llm.Factory, log *zap.Logger) *debate.Generator {
	return debate.NewGenerator(debate.Options{
		APIKey:     cfg.APIKey,
		NewClient:  factory,
		Model:      cfg.Model,
		MaxContext: cfg.MaxContext,
		Logger:     log,
	})
}

func NewRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	return api.NewRouter(NewGenerator(cfg, NewFactory(cfg), log), log)
}
