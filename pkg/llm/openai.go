package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel is the default OpenAI chat model.
const OpenAIModel = openai.GPT4o

// OpenAIClient generates text with the OpenAI chat completions API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient creates a new OpenAI client. An empty baseURL selects the public API.
func NewOpenAIClient(apiKey, model, baseURL string, maxTokens int) (client *OpenAIClient) {
	if model == "" {
		model = OpenAIModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	client = &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}
	return client
}

// Name returns the provider name.
func (c *OpenAIClient) Name() (name string) {
	name = ProviderOpenAI
	return name
}

// Generate sends prompt as a single chat completion.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (text string, err error) {
	var resp openai.ChatCompletionResponse
	resp, err = c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		err = errors.Wrap(err, "OpenAI API request failed")
		return text, err
	}

	if len(resp.Choices) == 0 {
		err = errors.New("no choices in OpenAI response")
		return text, err
	}

	text = resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		err = errors.New("empty content in OpenAI response")
		return text, err
	}

	return text, err
}

// Close is a no-op for the OpenAI client.
func (c *OpenAIClient) Close() (err error) {
	return err
}
