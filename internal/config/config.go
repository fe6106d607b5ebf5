// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for the serve command. A .env file, when
// present, is loaded by the root command before this is parsed.
type Config struct {
	Port          string `env:"STACKMAP_PORT" envDefault:"8888"`
	VocabPath     string `env:"STACKMAP_VOCAB_PATH" envDefault:"vocabularies.yaml"`
	CatalogType   string `env:"CATALOG_TYPE" envDefault:"vufind"`
	CatalogURL    string `env:"CATALOG_URL" envDefault:"https://asa.lib.lehigh.edu"`
	CatalogAPIKey string `env:"CATALOG_API_KEY"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
