// Package gemini wraps the Google generative AI SDK behind a minimal
// text-in/text-out interface. The rest of the application only ever sees
// TextGenerator; whether a call fails or why is opaque beyond the error.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// TextGenerator produces a free-text completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Config holds the client settings
type Config struct {
	APIKey string
	Model  string
}

// Client is a TextGenerator backed by the Gemini API
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed client. An empty API key is an error so
// the caller can disable assistant features instead of failing per request.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}
	if cfg.Model == "" {
		return nil, errors.New("missing model name")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{client: client, model: cfg.Model}, nil
}

// GenerateText requests a completion for the prompt
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ThinkingConfig: &genai.ThinkingConfig{
				ThinkingBudget: genai.Ptr(int32(0)),
			},
		})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
