package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL string     `env:"BACKEND_URL" envDefault:"http://localhost:8000"`
	ListenAddr string     `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel   slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// Empty allows every origin.
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
}

// Load reads configuration from the environment, after merging in a .env file from the working directory if one
// exists. Variables already set in the environment win over the .env file.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside of local development
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration from environment: %w", err)
	}

	return &cfg, nil
}

// Logger builds the process logger at the configured level
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

// MetadataKey is where the CLI keeps the resolved Config in its app metadata
const MetadataKey = "config"
