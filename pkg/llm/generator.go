package llm

import (
	"context"

	"github.com/pkg/errors"
)

// Supported providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

// DefaultMaxTokens bounds the response size when the config does not.
const DefaultMaxTokens = 4096

// Generator sends one prompt to a language-model API and returns its text reply.
type Generator interface {
	// Name returns the provider name.
	Name() string
	// Generate sends prompt and returns the concatenated text of the reply.
	Generate(ctx context.Context, prompt string) (text string, err error)
	// Close releases any resources held by the client.
	Close() error
}

// Options selects and configures a Generator.
type Options struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// NewGenerator creates the Generator for opts.Provider.
func NewGenerator(ctx context.Context, opts Options) (generator Generator, err error) {
	if opts.APIKey == "" {
		err = errors.Errorf("API key is required for provider %q", opts.Provider)
		return generator, err
	}

	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	switch opts.Provider {
	case ProviderAnthropic, "":
		generator = NewClient(opts.APIKey, opts.Model, opts.BaseURL, opts.MaxTokens)
	case ProviderOpenAI:
		generator = NewOpenAIClient(opts.APIKey, opts.Model, opts.BaseURL, opts.MaxTokens)
	case ProviderGemini:
		var gemini *GeminiClient
		gemini, err = NewGeminiClient(ctx, opts.APIKey, opts.Model, opts.MaxTokens)
		if err != nil {
			return generator, err
		}
		generator = gemini
	default:
		err = errors.Errorf("unknown provider %q (want anthropic, openai or gemini)", opts.Provider)
		return generator, err
	}

	return generator, err
}
