package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"pdf-referee-go/internal/config"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicAPIVersion     = "2023-06-01"
)

// AnthropicAdapter は Anthropic Messages API と直接通信する ReviewAI 実装です。
type AnthropicAdapter struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Client    *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicMessagesRequest struct {
	Model     string             `json:"model"`
	Messages  []anthropicMessage `json:"messages"`
	MaxTokens int                `json:"max_tokens"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicMessagesResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

type anthropicErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropicAdapter は AnthropicAdapter を初期化し、ReviewAI インターフェースとして返します。
// APIキーは環境変数 ANTHROPIC_API_KEY から取得します。
func NewAnthropicAdapter(mc config.ModelConfig) (ReviewAI, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is not set")
	}

	return &AnthropicAdapter{
		BaseURL:   anthropicDefaultBaseURL,
		APIKey:    apiKey,
		Model:     mc.ModelID,
		MaxTokens: mc.MaxOutputTokens,
		// 長文生成のため、余裕を持ったタイムアウトを設定
		Client: &http.Client{Timeout: 10 * time.Minute},
	}, nil
}

// ModelID は ReviewAI インターフェースを満たします。
func (a *AnthropicAdapter) ModelID() string {
	return a.Model
}

// GenerateReview は ReviewAI インターフェースを満たします。
func (a *AnthropicAdapter) GenerateReview(ctx context.Context, finalPrompt string) (string, error) {
	reqBody := anthropicMessagesRequest{
		Model: a.Model,
		Messages: []anthropicMessage{
			{Role: "user", Content: finalPrompt},
		},
		MaxTokens: a.MaxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("anthropic: marshal request: %w", err)
	}

	url := strings.TrimRight(a.BaseURL, "/") + "/v1/messages"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.APIKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Message == "" {
			return "", fmt.Errorf("anthropic: unexpected status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("anthropic: API error: %s", errResp.Error.Message)
	}

	var msgResp anthropicMessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", fmt.Errorf("anthropic: decode response: %w", err)
	}

	if len(msgResp.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty response content")
	}

	var result strings.Builder
	for _, block := range msgResp.Content {
		if block.Type == "text" {
			result.WriteString(block.Text)
		}
	}

	return strings.TrimSpace(result.String()), nil
}
