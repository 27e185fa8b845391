package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

// placeholderReply substitutes a successful response whose first choice
// carried no content.
const placeholderReply = "No response generated"

// OpenRouterClient is the secondary inference provider, an
// OpenAI-compatible chat-completions API.
type OpenRouterClient struct {
	apiKey     string
	endpoint   string
	model      string
	referer    string
	title      string
	httpClient *http.Client
}

// OpenRouterOptions configures the client.
type OpenRouterOptions struct {
	APIKey   string
	Endpoint string
	Model    string
	Referer  string
	Title    string
}

// NewOpenRouterClient creates the OpenRouter client.
func NewOpenRouterClient(opts OpenRouterOptions) *OpenRouterClient {
	return &OpenRouterClient{
		apiKey:   opts.APIKey,
		endpoint: opts.Endpoint,
		model:    opts.Model,
		referer:  opts.Referer,
		title:    opts.Title,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether an API key was provided.
func (c *OpenRouterClient) Configured() bool {
	return c.apiKey != ""
}

// Source labels replies from this provider.
func (c *OpenRouterClient) Source() string {
	return fmt.Sprintf("OpenRouter (%s)", c.model)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Complete sends the exchange to OpenRouter. A missing key fails before
// any network I/O; non-2xx statuses surface with the response body.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", entity.ErrProviderNotConfigured
	}

	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		"max_tokens": 700,
	}
	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", c.title)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter api error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openrouter api error: %d %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode openrouter response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return placeholderReply, nil
	}
	return parsed.Choices[0].Message.Content, nil
}
