// Package remote talks to the server-side assistant proxy. One POST per
// unresolved query, no retries; transport policy beyond a timeout belongs to
// the proxy, not here.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 20 * time.Second

type Config struct {
	URL     string
	Timeout time.Duration
}

type Client struct {
	url        string
	httpClient *http.Client
}

type askRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
}

type askResponse struct {
	Response string `json:"response"`
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        strings.TrimSpace(cfg.URL),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ask sends the shopper's prompt together with the serialized catalog
// context and returns the proxy's answer text.
func (c *Client) Ask(ctx context.Context, prompt, catalogContext string) (string, error) {
	if c.url == "" {
		return "", fmt.Errorf("remote assistant URL is not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	payload, err := json.Marshal(askRequest{Prompt: prompt, Context: catalogContext})
	if err != nil {
		return "", fmt.Errorf("could not encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("could not build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("could not read assistant response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed askResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("could not parse assistant response: %w", err)
	}
	answer := strings.TrimSpace(parsed.Response)
	if answer == "" {
		return "", fmt.Errorf("assistant returned an empty response")
	}
	return answer, nil
}

func truncate(text string, max int) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= max {
		return trimmed
	}
	return trimmed[:max] + "..."
}
