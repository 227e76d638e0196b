package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// Offline mode swaps the OpenAI embedder for the deterministic
	// hash-based one and requires no credentials.
	OfflineMode bool `envconfig:"OFFLINE_MODE" default:"false"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("INVEST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// Validate enforces the startup contract: outside offline mode an OpenAI
// credential is mandatory.
func (c *Config) Validate() error {
	if !c.OfflineMode && c.OpenAIAPIKey == "" {
		return fmt.Errorf("INVEST_OPENAI_API_KEY must be set when INVEST_OFFLINE_MODE is false")
	}
	return nil
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}
