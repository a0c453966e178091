// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries every knob the agent, batch runner, and clients need.
// It is constructed once in the command layer and passed down explicitly;
// nothing in this repository reads configuration ambiently.
type Config struct {
	// Providers
	Provider     string // "gemini" or "openai"; applies to generation and embedding
	GeminiAPIKey string
	OpenAIAPIKey string

	// Embedding
	EmbeddingDimensions int // 0 means provider default

	// Agent behavior
	MaxRetries          int     // validation retry budget per pair
	NetworkAttempts     int     // network retry cap inside one generation call
	TopKPerRequirement  int     // matches retrieved per responsibility
	TopKOverall         int     // aggregate context window size
	MinBulletChars      int     // hard lower bound on bullet length
	MaxBulletChars      int     // soft upper bound on bullet length
	MinCoverageRatio    float64 // required-skill coverage gate
	MinCoverLetterChars int     // soft lower bound on cover letter length

	// Batch behavior
	MaxConcurrent int
	OutputDir     string

	// Persistence (optional; empty disables the artifact store)
	DatabaseURL string

	Verbose bool
}

// Default returns the configuration with all tuning knobs at their defaults.
func Default() Config {
	return Config{
		Provider:            "gemini",
		MaxRetries:          3,
		NetworkAttempts:     3,
		TopKPerRequirement:  5,
		TopKOverall:         10,
		MinBulletChars:      30,
		MaxBulletChars:      150,
		MinCoverageRatio:    0.8,
		MinCoverLetterChars: 200,
		MaxConcurrent:       3,
		OutputDir:           "outputs",
	}
}

// Load returns the default configuration overlaid with environment values.
// Environment variables: LLM_PROVIDER, GEMINI_API_KEY, OPENAI_API_KEY,
// EMBEDDING_DIMENSIONS, DATABASE_URL, OUTPUT_DIR.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("EMBEDDING_DIMENSIONS"); v != "" {
		if dims, err := strconv.Atoi(v); err == nil {
			cfg.EmbeddingDimensions = dims
		}
	}

	return cfg
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Provider != "gemini" && c.Provider != "openai" {
		return fmt.Errorf("config error: unknown provider %q (expected gemini or openai)", c.Provider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("config error: no API key set for provider %q", c.Provider)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("config error: max_retries must be at least 1, got %d", c.MaxRetries)
	}
	if c.NetworkAttempts < 1 {
		return fmt.Errorf("config error: network_attempts must be at least 1, got %d", c.NetworkAttempts)
	}
	if c.TopKPerRequirement < 1 || c.TopKOverall < 1 {
		return fmt.Errorf("config error: top-k values must be at least 1")
	}
	if c.MinBulletChars < 1 || c.MaxBulletChars < c.MinBulletChars {
		return fmt.Errorf("config error: bullet length bounds invalid (min %d, max %d)", c.MinBulletChars, c.MaxBulletChars)
	}
	if c.MinCoverageRatio < 0 || c.MinCoverageRatio > 1 {
		return fmt.Errorf("config error: min_coverage_ratio must be in [0,1], got %.2f", c.MinCoverageRatio)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("config error: max_concurrent must be at least 1, got %d", c.MaxConcurrent)
	}
	return nil
}
