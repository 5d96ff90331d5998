package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Port       string
	Provider   string
	APIKeyEnv  string
	BaseURL    string
	Model      string
	MaxContext int
	LogLevel   string
	LogFormat  string
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		Provider:  strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq)),
		BaseURL:   os.Getenv("GROQ_BASE_URL"),
		Model:     os.Getenv("DEBATE_MODEL"),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "console")),
	}

	switch cfg.Provider {
	case ProviderGroq:
		cfg.APIKeyEnv = "GROQ_API_KEY"
	case ProviderGemini:
		cfg.APIKeyEnv = "GEMINI_API_KEY"
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want %s or %s)", cfg.Provider, ProviderGroq, ProviderGemini)
	}

	if raw := os.Getenv("MAX_CONTEXT_BYTES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MAX_CONTEXT_BYTES %q", raw)
		}
		cfg.MaxContext = n
	}

	return cfg, nil
}

// APIKey reads the provider credential from the environment at call time.
func (c *Config) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
