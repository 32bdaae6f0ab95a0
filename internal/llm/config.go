package llm

import (
	"os"
	"strconv"
)

// Config holds configuration for the reasoning model client.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://api.anthropic.com",
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 2000,
		TimeoutMs: 60000,
	}
}

// LoadConfig reads model configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if v := os.Getenv("SECRETARY_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SECRETARY_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SECRETARY_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("SECRETARY_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SECRETARY_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
