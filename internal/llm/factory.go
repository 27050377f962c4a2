package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/store"
)

// Options carries the dependencies of the optional decorators. Zero
// values disable the corresponding decorator.
type Options struct {
	Events  store.EventRepo
	Logger  *zap.Logger
	Metrics Recorder
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry, metrics and logging middleware.
func NewProvider(ctx context.Context, cfg Config, opts Options) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → metrics → logging → base
	p := base
	if opts.Events != nil || opts.Logger != nil {
		p = WithLogging(p, opts.Events, opts.Logger)
	}
	if opts.Metrics != nil {
		p = WithMetrics(p, opts.Metrics)
	}
	return WithRetry(p, cfg.Retry), nil
}

// ResolveConfig picks the LLM configuration for this process. An explicit
// KEIZOKU_LLM_PROVIDER wins; otherwise the standard provider API key
// variables are probed. ok is false when no provider is configured.
func ResolveConfig() (cfg Config, ok bool, err error) {
	if os.Getenv("KEIZOKU_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return cfg, false, err
		}
		return cfg, true, nil
	}
	cfg, ok = DiscoverConfig()
	return cfg, ok, nil
}

// NewProviderFromEnv resolves configuration from the environment and builds
// a decorated provider. It returns a nil Provider, with no error, when no
// provider is configured.
func NewProviderFromEnv(ctx context.Context, opts Options) (Provider, Config, error) {
	cfg, ok, err := ResolveConfig()
	if err != nil {
		return nil, cfg, err
	}
	if !ok {
		return nil, cfg, nil
	}
	p, err := NewProvider(ctx, cfg, opts)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
