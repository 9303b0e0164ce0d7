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

const openaiDefaultBaseURL = "https://api.openai.com"

// OpenAIAdapter は OpenAI Chat Completions API と直接通信する ReviewAI 実装です。
// o1 系の推論モデルを想定し、max_tokens ではなく max_completion_tokens を使用します。
type OpenAIAdapter struct {
	BaseURL             string
	APIKey              string
	Model               string
	MaxCompletionTokens int
	Client              *http.Client
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiChatRequest struct {
	Model               string          `json:"model"`
	Messages            []openaiMessage `json:"messages"`
	MaxCompletionTokens int             `json:"max_completion_tokens,omitempty"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}

type openaiChatResponse struct {
	Choices []openaiChoice `json:"choices"`
}

type openaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenAIAdapter は OpenAIAdapter を初期化し、ReviewAI インターフェースとして返します。
// APIキーは環境変数 OPENAI_API_KEY から取得します。
func NewOpenAIAdapter(mc config.ModelConfig) (ReviewAI, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	return &OpenAIAdapter{
		BaseURL:             openaiDefaultBaseURL,
		APIKey:              apiKey,
		Model:               mc.ModelID,
		MaxCompletionTokens: mc.MaxOutputTokens,
		// 推論モデルは応答までに時間がかかるため、長めのタイムアウトを設定
		Client: &http.Client{Timeout: 30 * time.Minute},
	}, nil
}

// ModelID は ReviewAI インターフェースを満たします。
func (o *OpenAIAdapter) ModelID() string {
	return o.Model
}

// GenerateReview は ReviewAI インターフェースを満たします。
func (o *OpenAIAdapter) GenerateReview(ctx context.Context, finalPrompt string) (string, error) {
	reqBody := openaiChatRequest{
		Model: o.Model,
		Messages: []openaiMessage{
			{Role: "user", Content: finalPrompt},
		},
		MaxCompletionTokens: o.MaxCompletionTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	url := strings.TrimRight(o.BaseURL, "/") + "/v1/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp openaiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Message == "" {
			return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("openai: API error: %s", errResp.Error.Message)
	}

	var chatResp openaiChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
