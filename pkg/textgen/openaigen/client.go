// Package openaigen provides a textgen.Generator implementation backed by an
// OpenAI-compatible chat-completion API through the eino model component.
package openaigen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"numerology/pkg/textgen"
)

// chatModel is the narrow slice of eino's chat model used by this client.
type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Client fulfills textgen.Generator against a chat-completion endpoint.
// It is safe for concurrent use.
type Client struct {
	chatModel chatModel
}

// Options configure the upstream chat-completion endpoint.
type Options struct {
	// BaseURL overrides the API endpoint; empty means the provider default.
	BaseURL string
	// APIKey authenticates requests.
	APIKey string
	// Model is the model identifier, e.g. "gpt-4".
	Model string
	// Timeout bounds a single request.
	Timeout time.Duration
}

// New constructs a Client talking to the configured endpoint.
func New(ctx context.Context, opts Options) (*Client, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: opts.BaseURL,
		APIKey:  opts.APIKey,
		Model:   opts.Model,
		Timeout: opts.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create chat model: %w", err)
	}

	return &Client{chatModel: cm}, nil
}

// Generate sends the prompt as a single system message and returns the
// completion content. An empty completion is treated as a malformed response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("could not generate completion: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("empty completion from model")
	}

	return resp.Content, nil
}

// Ensure Client conforms to the textgen.Generator interface at compile time.
var _ textgen.Generator = (*Client)(nil)
