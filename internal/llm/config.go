package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model backend for local quiz
// generation.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single generation request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string // Default "claude-haiku".
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // Default "gpt-4o-mini".
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

type GeminiConfig struct {
	APIKey string
	Model  string // Default "gemini-flash".
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default "google/gemini-2.0-flash-exp".
	BaseURL string // Default "https://openrouter.ai/api/v1".
}

// RetryConfig shapes the backoff schedule for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the stock configuration: Anthropic with the
// cheap model, three attempts, 30s per request.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers QUIZBUDDY_* environment variables over the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setEnv(&cfg.Provider, "QUIZBUDDY_LLM_PROVIDER")

	setEnv(&cfg.Anthropic.APIKey, "QUIZBUDDY_ANTHROPIC_API_KEY")
	setEnv(&cfg.Anthropic.Model, "QUIZBUDDY_ANTHROPIC_MODEL")

	setEnv(&cfg.OpenAI.APIKey, "QUIZBUDDY_OPENAI_API_KEY")
	setEnv(&cfg.OpenAI.Model, "QUIZBUDDY_OPENAI_MODEL")
	setEnv(&cfg.OpenAI.BaseURL, "QUIZBUDDY_OPENAI_BASE_URL")

	setEnv(&cfg.Gemini.APIKey, "QUIZBUDDY_GEMINI_API_KEY")
	setEnv(&cfg.Gemini.Model, "QUIZBUDDY_GEMINI_MODEL")

	setEnv(&cfg.OpenRouter.APIKey, "QUIZBUDDY_OPENROUTER_API_KEY")
	setEnv(&cfg.OpenRouter.Model, "QUIZBUDDY_OPENROUTER_MODEL")

	return cfg
}

func setEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig checks the well-known vendor API key variables in
// priority order (Gemini, OpenAI, Anthropic, OpenRouter) and returns a
// config for the first one found. ok is false when no key is set.
func DiscoverConfig() (Config, bool) {
	candidates := []struct {
		envKey   string
		provider string
		dst      func(cfg *Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(cfg *Config) *string { return &cfg.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(cfg *Config) *string { return &cfg.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(cfg *Config) *string { return &cfg.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(cfg *Config) *string { return &cfg.OpenRouter.APIKey }},
	}

	for _, p := range candidates {
		if k := os.Getenv(p.envKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			*p.dst(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	var key, envKey string
	switch c.Provider {
	case "anthropic":
		key, envKey = c.Anthropic.APIKey, "QUIZBUDDY_ANTHROPIC_API_KEY"
	case "openai":
		key, envKey = c.OpenAI.APIKey, "QUIZBUDDY_OPENAI_API_KEY"
	case "gemini":
		key, envKey = c.Gemini.APIKey, "QUIZBUDDY_GEMINI_API_KEY"
	case "openrouter":
		key, envKey = c.OpenRouter.APIKey, "QUIZBUDDY_OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envKey, c.Provider)
	}
	return nil
}
