package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with the
// timeout and retry decorators: caller → retry → timeout → base.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithTimeout(base, cfg.Timeout), cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from STUDYPAL_* env vars, falling
// back to standard API key discovery when no provider is configured
// explicitly.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no API key found: set OPENAI_API_KEY (or ANTHROPIC_API_KEY / GEMINI_API_KEY), or configure STUDYPAL_LLM_PROVIDER: %w", err)
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg)
}
