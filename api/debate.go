// Package handler is the serverless entry point for platforms that invoke a
// Go function per request (for example Vercel's Go runtime).
package handler

import (
	"net/http"
	"sync"

	"github.com/BerylCAtieno/nlvx-arena/internal/app"
	"github.com/BerylCAtieno/nlvx-arena/internal/config"
	"github.com/BerylCAtieno/nlvx-arena/internal/logger"
	"github.com/gin-gonic/gin"
)

var (
	once    sync.Once
	engine  http.Handler
	initErr error
)

func setup() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	gin.SetMode(gin.ReleaseMode)
	engine = app.NewRouter(cfg, logger.New(cfg.LogLevel, "json"))
}

// Handler serves /api/debate. Environment is read once per cold start,
// except the API key which is read on every request.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}
	engine.ServeHTTP(w, r)
}
