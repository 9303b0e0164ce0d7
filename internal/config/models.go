package config

// Provider はAIモデルのホスティングサービスを識別します。
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
	ProviderOpenAI    Provider = "openai"
)

// ModelConfig は単一のAIバックエンドの静的な呼び出しパラメータを保持します。
type ModelConfig struct {
	ModelID         string   // モデルの正規名 (レポートの見出しにもそのまま使用される)
	Provider        Provider // 呼び出し先のサービス
	MaxOutputTokens int      // 出力トークンの上限 (0 はプロバイダのデフォルト)
	ReasoningTokens int      // 推論トークンの予算 (対応モデルのみ)
}

// DefaultModels は査読に使用する3つのモデル構成を宣言順で返します。
// レポート内の並び順はこの宣言順で固定され、各モデルの応答完了順には依存しません。
func DefaultModels() []ModelConfig {
	return []ModelConfig{
		{
			ModelID:         "claude-opus-4-20250514",
			Provider:        ProviderAnthropic,
			MaxOutputTokens: 8192,
		},
		{
			ModelID:  "gemini-2.0-flash-exp",
			Provider: ProviderGoogle,
		},
		{
			ModelID:         "o1-preview",
			Provider:        ProviderOpenAI,
			MaxOutputTokens: 100000,
			ReasoningTokens: 100000,
		},
	}
}
