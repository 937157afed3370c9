package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvGenerationBaseURL     = "ATELIER_GENERATION_BASE_URL"
	EnvGenerationToken       = "ATELIER_GENERATION_TOKEN"
	EnvGenerationModel       = "ATELIER_GENERATION_MODEL"
	EnvGenerationTemperature = "ATELIER_GENERATION_TEMPERATURE"
	EnvGenerationMaxTokens   = "ATELIER_GENERATION_MAX_TOKENS"
	EnvGenerationLanguage    = "ATELIER_GENERATION_LANGUAGE"
)

// GenerationConfig holds the external text-generation service parameters.
// Token is deliberately not validated here: a missing credential surfaces
// as a fatal configuration error on first use, not at startup.
type GenerationConfig struct {
	BaseURL     string  `toml:"base_url"`
	Token       string  `toml:"token"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	Language    string  `toml:"language"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GenerationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GenerationConfig) Merge(overlay *GenerationConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Language != "" {
		c.Language = overlay.Language
	}
}

func (c *GenerationConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 2000
	}
	if c.Language == "" {
		c.Language = "en"
	}
}

func (c *GenerationConfig) loadEnv() {
	if v := os.Getenv(EnvGenerationBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvGenerationToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvGenerationModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGenerationTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
	if v := os.Getenv(EnvGenerationMaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv(EnvGenerationLanguage); v != "" {
		c.Language = v
	}
}

func (c *GenerationConfig) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url required")
	}
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature out of range: %v", c.Temperature)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive")
	}
	return nil
}
