package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"

	"pdf-referee-go/internal/config"
)

const (
	// 査読の一貫性を優先するため、低めの温度に設定
	defaultGeminiTemperature = float32(0.3)
	// 一時的なネットワークエラーやAPIのレート制限に対応するためのリトライ回数
	defaultGeminiMaxRetries = uint64(3)
)

// GeminiAdapter は go-ai-client の gemini.Client をラップし、
// ReviewAI インターフェースを実装する具体的な構造体です。
type GeminiAdapter struct {
	client  *gemini.Client
	modelID string
}

// NewGeminiAdapter は GeminiAdapter を初期化し、ReviewAI インターフェースとして返します。
// 温度を明示的に指定するため、gemini.NewClientFromEnv ではなく gemini.NewClient を直接利用します。
// APIキーは環境変数から取得し、リトライ回数はデフォルトの3回を設定します。
func NewGeminiAdapter(ctx context.Context, mc config.ModelConfig) (ReviewAI, error) {
	// 1. APIキーを環境変数から取得
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY or GOOGLE_API_KEY environment variable is not set")
	}

	// 2. モデルパラメータとリトライ設定を定義
	temperature := defaultGeminiTemperature
	maxRetries := defaultGeminiMaxRetries

	// 3. gemini.Config 構造体を構築
	cfg := gemini.Config{
		APIKey:      apiKey,
		Temperature: &temperature,
		MaxRetries:  maxRetries,
	}

	// 4. gemini.NewClient を利用してクライアントを生成
	gClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize underlying gemini client: %w", err)
	}

	return &GeminiAdapter{
		client:  gClient,
		modelID: mc.ModelID,
	}, nil
}

// ModelID は ReviewAI インターフェースを満たします。
func (ga *GeminiAdapter) ModelID() string {
	return ga.modelID
}

// GenerateReview は ReviewAI インターフェースを満たします。
func (ga *GeminiAdapter) GenerateReview(ctx context.Context, finalPrompt string) (string, error) {
	// 汎用クライアントの GenerateContent メソッドを呼び出す
	resp, err := ga.client.GenerateContent(ctx, finalPrompt, ga.modelID)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed (Model: %s): %w", ga.modelID, err)
	}

	return resp.Text, nil
}
