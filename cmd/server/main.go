package main

import (
	"log"

	"github.com/BerylCAtieno/nlvx-arena/internal/app"
	"github.com/BerylCAtieno/nlvx-arena/internal/config"
	"github.com/BerylCAtieno/nlvx-arena/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	// The key is read per request; a missing key is reported to callers.
	if cfg.APIKey() == "" {
		zlog.Warn("API key not set, debate requests will fail until it is", zap.String("env", cfg.APIKeyEnv))
	}

	router := app.NewRouter(cfg, zlog)

	zlog.Info("NLVX Arena debate API starting",
		zap.String("port", cfg.Port),
		zap.String("provider", cfg.Provider),
		zap.String("endpoint", "http://localhost:"+cfg.Port+"/api/debate"))

	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed to start", zap.Error(err))
	}
}
