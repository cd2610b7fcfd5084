package llm

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
)

const (
	// ClaudeModel is the default Anthropic model.
	ClaudeModel = "claude-sonnet-4-20250514"
	// ClaudeTimeout bounds a single Messages call.
	ClaudeTimeout = 120 * time.Second
)

// Client represents a Claude API client.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewClient creates a new Claude API client. An empty model selects ClaudeModel;
// an empty baseURL selects the public API. The client never retries.
func NewClient(apiKey, model, baseURL string, maxTokens int) (client *Client) {
	if model == "" {
		model = ClaudeModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(ClaudeTimeout),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client = &Client{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: int64(maxTokens),
	}
	return client
}

// Name returns the provider name.
func (c *Client) Name() (name string) {
	name = ProviderAnthropic
	return name
}

// Generate sends prompt to the Messages API.
func (c *Client) Generate(ctx context.Context, prompt string) (text string, err error) {
	var msg *anthropic.Message
	msg, err = c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		err = errors.Wrap(err, "Claude API request failed")
		return text, err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	text = b.String()
	if strings.TrimSpace(text) == "" {
		err = errors.New("no text content in Claude response")
		return text, err
	}

	return text, err
}

// Close is a no-op for the Claude client.
func (c *Client) Close() (err error) {
	return err
}

// StripCodeFences removes a markdown code fence around a model reply, with or
// without a language tag.
func StripCodeFences(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)

	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	// Drop the opening fence line, including any language tag.
	newline := strings.Index(cleaned, "\n")
	if newline == -1 {
		cleaned = ""
		return cleaned
	}
	cleaned = cleaned[newline+1:]

	cleaned = strings.TrimRight(cleaned, " \r\n")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimRight(cleaned, " \r\n")

	return cleaned
}
