package ai

import (
	"context"
	"errors"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Complete renders one chat completion for the given prompts.
	// Providers are configured to bias toward JSON-only output.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Test sends a canned message and returns the response.
	Test(ctx context.Context) (string, error)
	// Name returns the provider name.
	Name() string
}

// Config holds the configuration for an LLM provider.
type Config struct {
	Provider    string // openai, anthropic, compatible
	APIKey      string
	BaseURL     string // optional for openai, required for compatible
	Model       string
	Temperature float64 // 0 disables the parameter; the pipeline defaults high for varied output
	MaxTokens   int
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

const defaultMaxTokens = 4096

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider creates a new LLM provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg)
	default:
		return nil, ErrInvalidProvider
	}
}
