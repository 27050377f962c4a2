package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the remote classifier's provider.
type Config struct {
	// Provider is one of "openai", "gemini", "anthropic", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one classification, retries included. Default: 60s.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL points the client at an OpenAI-compatible API.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig has the same shape as OpenAIConfig; BaseURL defaults
// to the public OpenRouter endpoint.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures RetryProvider.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults: the cheapest model of each provider,
// three attempts and a 60s budget.
func DefaultConfig() Config {
	return Config{
		Provider:   "openai",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "openai/gpt-4o-mini"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv overlays the KEIZOKU_* variables on DefaultConfig. An
// unparsable KEIZOKU_LLM_TIMEOUT keeps the default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	vars := []struct {
		name string
		dst  *string
	}{
		{"KEIZOKU_LLM_PROVIDER", &cfg.Provider},
		{"KEIZOKU_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"KEIZOKU_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"KEIZOKU_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"KEIZOKU_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"KEIZOKU_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"KEIZOKU_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"KEIZOKU_GEMINI_MODEL", &cfg.Gemini.Model},
		{"KEIZOKU_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"KEIZOKU_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
		{"KEIZOKU_OPENROUTER_BASE_URL", &cfg.OpenRouter.BaseURL},
	}
	for _, v := range vars {
		if s := os.Getenv(v.name); s != "" {
			*v.dst = s
		}
	}
	if d, err := time.ParseDuration(os.Getenv("KEIZOKU_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// DiscoverConfig picks the first provider whose conventional API key
// variable is set, probing OpenAI, Gemini, Anthropic, then OpenRouter.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	keys := []struct {
		env      string
		provider string
		dst      *string
	}{
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, k := range keys {
		if v := os.Getenv(k.env); v != "" {
			cfg.Provider = k.provider
			*k.dst = v
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case "mock":
		return nil
	case "anthropic":
		key, env = c.Anthropic.APIKey, "KEIZOKU_ANTHROPIC_API_KEY"
	case "openai":
		key, env = c.OpenAI.APIKey, "KEIZOKU_OPENAI_API_KEY"
	case "gemini":
		key, env = c.Gemini.APIKey, "KEIZOKU_GEMINI_API_KEY"
	case "openrouter":
		key, env = c.OpenRouter.APIKey, "KEIZOKU_OPENROUTER_API_KEY"
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
