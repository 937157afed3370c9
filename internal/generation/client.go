// Package generation provides the client for the external text-generation
// service. It issues one synchronous chat-completion request per call,
// forcing structured (JSON-object) output, and surfaces upstream failures
// verbatim. It performs no retries and no response parsing beyond the
// completion envelope.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/atelier-studio/atelier/internal/config"
)

// Role values for chat messages.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged instruction in a generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client issues chat-completion requests against a configured endpoint.
type Client struct {
	cfg  config.GenerationConfig
	http *http.Client
}

// New creates a Client from the generation configuration. The credential is
// checked at request time, not here; see Generate.
func New(cfg config.GenerationConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: http.DefaultClient,
	}
}

// Generate sends the ordered messages to the generation endpoint and returns
// the raw text of the first completion choice. A service response with no
// choices yields an empty string and no error; callers treat that as a
// validation failure at the next stage. Returns ErrMissingCredential when no
// bearer token is configured and an *UpstreamError for non-success responses.
func (c *Client) Generate(ctx context.Context, messages []Message) (string, error) {
	if c.cfg.Token == "" {
		return "", ErrMissingCredential
	}

	body, err := json.Marshal(chatRequest{
		Model:          c.cfg.Model,
		Messages:       messages,
		Temperature:    c.cfg.Temperature,
		MaxTokens:      c.cfg.MaxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(data)}
	}

	var completion chatResponse
	if err := json.Unmarshal(data, &completion); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
