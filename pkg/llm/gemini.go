package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// GeminiModel is the default Gemini model.
const GeminiModel = "gemini-2.5-flash"

// GeminiClient generates text with Google Gemini.
type GeminiClient struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, apiKey, model string, maxTokens int) (client *GeminiClient, err error) {
	if apiKey == "" {
		err = errors.New("API key is required")
		return client, err
	}
	if model == "" {
		model = GeminiModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	var gc *genai.Client
	gc, err = genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		err = errors.Wrap(err, "failed to create Gemini client")
		return client, err
	}

	client = &GeminiClient{
		client:    gc,
		model:     model,
		maxTokens: int32(maxTokens),
	}
	return client, err
}

// Name returns the provider name.
func (c *GeminiClient) Name() (name string) {
	name = ProviderGemini
	return name
}

// Generate sends prompt to the configured Gemini model.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (text string, err error) {
	model := c.client.GenerativeModel(c.model)
	model.SetMaxOutputTokens(c.maxTokens)
	model.SystemInstruction = genai.NewUserContent(genai.Text(SystemPrompt))

	var resp *genai.GenerateContentResponse
	resp, err = model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		err = errors.Wrap(err, "Gemini API request failed")
		return text, err
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		break
	}

	text = b.String()
	if strings.TrimSpace(text) == "" {
		err = errors.New("no text content in Gemini response")
		return text, err
	}

	return text, err
}

// Close releases the underlying Gemini client.
func (c *GeminiClient) Close() (err error) {
	err = c.client.Close()
	return err
}
