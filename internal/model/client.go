// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model implements the chat-completions client used for every
// article operation: generation, reauthoring, formatting, and translation.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/kb-dojo/internal/httputil"
	"github.com/pdiddy/kb-dojo/pkg/types"
)

// systemRole is the fixed system directive sent with every completion.
const systemRole = "You are a technical writer who produces clear, accurate, and well-structured knowledge base articles in markdown."

const (
	defaultBaseURL   = "https://api.openai.com/v1"
	defaultMaxTokens = 2000
	defaultTimeout   = 120 * time.Second
)

// Client calls an OpenAI-compatible chat-completions endpoint. Construct it
// once and pass it to the pipeline; the caller owns its lifecycle.
type Client struct {
	cfg        types.ModelConfig
	httpClient *http.Client
}

// New creates a Client from cfg, filling in defaults for unset fields.
func New(cfg types.ModelConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// chatRequest is the request body for the chat-completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat-completions API.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt with the fixed system role and returns the trimmed
// completion text. Transport failures, non-200 statuses, and empty choices
// all surface as errors; callers treat "error or blank" as "fall back to
// prior content".
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.cfg.Name,
		Messages: []chatMessage{
			{Role: "system", Content: systemRole},
			{Role: "user", Content: prompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling model API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("model API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding model response: %w", err)
	}

	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("model API returned no choices")
	}

	return strings.TrimSpace(cResp.Choices[0].Message.Content), nil
}
