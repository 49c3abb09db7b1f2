package gateway

import (
	"context"
	"fmt"

	"github.com/avinashj/socratic/internal/store"
)

// NewGateway creates a Gateway from configuration.
// It returns the gateway wrapped with retry and logging middleware.
func NewGateway(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Gateway, error) {
	var base Gateway
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicGateway(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIGateway(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiGateway(ctx, cfg.Gemini)
	case "openrouter":
		// OpenRouter speaks the OpenAI chat completion protocol.
		base, err = NewOpenAIGateway(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: openRouterBaseURL(cfg.OpenRouter),
		})
	case "mock":
		return NewMockGateway(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s gateway: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewGatewayFromEnv builds a Gateway from SOCRATIC_* env vars, falling
// back to probing the well-known provider API key vars.
func NewGatewayFromEnv(ctx context.Context, eventRepo store.EventRepo) (Gateway, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewGateway(ctx, cfg, eventRepo)
}

func openRouterBaseURL(cfg OpenRouterConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return "https://openrouter.ai/api/v1"
}
