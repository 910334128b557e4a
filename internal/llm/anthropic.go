package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type AnthropicClient struct {
	apiKey  string
	model   string
	BaseURL string
	client  *http.Client
}

func NewAnthropicClient() *AnthropicClient {
	return &AnthropicClient{
		apiKey:  os.Getenv("ANTHROPIC_API_KEY"),
		model:   os.Getenv("ANTHROPIC_MODEL"),
		BaseURL: "https://api.anthropic.com",
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// GenerateDesign sends a menu-design prompt to the Anthropic messages API
// and returns the HTML document from the response.
func (a *AnthropicClient) GenerateDesign(ctx context.Context, prompt string) (string, error) {
	if a.apiKey == "" {
		return "", errors.New("missing ANTHROPIC_API_KEY")
	}
	if a.model == "" {
		return "", errors.New("missing ANTHROPIC_MODEL")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	payload := map[string]any{
		"model":       a.model,
		"max_tokens":  4096,
		"temperature": 0.7,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.BaseURL+"/v1/messages",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic api error: %s", string(raw))
	}

	// Anthropic response shape
	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Content) == 0 || result.Content[0].Text == "" {
		return "", errors.New("empty anthropic response")
	}

	html := ExtractHTML(result.Content[0].Text)
	if html == "" {
		return "", errors.New("anthropic returned no html document")
	}

	return html, nil
}
