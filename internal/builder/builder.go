package builder

import (
	"context"
	"fmt"
	"log/slog"

	"pdf-referee-go/internal/adapters"
	"pdf-referee-go/internal/config"
	"pdf-referee-go/internal/coop"
	"pdf-referee-go/internal/document"
	"pdf-referee-go/internal/report"
	"pdf-referee-go/internal/runner"
	"pdf-referee-go/prompts"
)

// BuildReviewRunner は、必要な依存関係をすべて構築し、
// 実行可能な ReviewRunner のインスタンスを返します。
func BuildReviewRunner(ctx context.Context, cfg config.ReviewConfig) (*runner.ReviewRunner, error) {
	// 1. Resolver の構築
	resolver := document.NewResolver()
	slog.Debug("Document Resolver を構築しました。")

	// 2. Prompt Builder の構築
	promptBuilder, err := prompts.NewReviewPromptBuilder("referee_review", prompts.RefereePromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("Prompt Builder の構築に失敗しました: %w", err)
	}
	slog.Debug("PromptBuilderを構築しました。")

	// 3. 各モデルのバックエンドを宣言順に構築
	backends, err := buildBackends(ctx, config.DefaultModels())
	if err != nil {
		return nil, err
	}

	// 4. 依存関係を注入して Runner を組み立てる
	reviewRunner := runner.NewReviewRunner(resolver, promptBuilder, backends)

	slog.Debug("ReviewRunner の構築が完了しました。")
	return reviewRunner, nil
}

// buildBackends はモデル構成テーブルから ReviewAI 実装を宣言順に構築します。
func buildBackends(ctx context.Context, models []config.ModelConfig) ([]adapters.ReviewAI, error) {
	backends := make([]adapters.ReviewAI, 0, len(models))
	for _, mc := range models {
		var (
			backend adapters.ReviewAI
			err     error
		)
		switch mc.Provider {
		case config.ProviderAnthropic:
			backend, err = adapters.NewAnthropicAdapter(mc)
		case config.ProviderGoogle:
			backend, err = adapters.NewGeminiAdapter(ctx, mc)
		case config.ProviderOpenAI:
			backend, err = adapters.NewOpenAIAdapter(mc)
		default:
			err = fmt.Errorf("未知のプロバイダです: %s", mc.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("モデル %s のバックエンド構築に失敗しました: %w", mc.ModelID, err)
		}
		slog.Debug("モデルバックエンドを構築しました。", "model", mc.ModelID, "provider", string(mc.Provider))
		backends = append(backends, backend)
	}
	return backends, nil
}

// BuildSink は設定された出力モードに対応する Sink を構築します。
// 優先順位の解決は config.ReviewConfig.SelectedSink に委譲します。
func BuildSink(cfg config.ReviewConfig) (report.Sink, error) {
	switch cfg.SelectedSink() {
	case config.SinkClipboard:
		return report.NewClipboardSink(), nil
	case config.SinkCoop:
		client, err := coop.NewClientFromEnv()
		if err != nil {
			return nil, fmt.Errorf("Coopクライアントの初期化に失敗しました: %w", err)
		}
		return report.NewCoopSink(client), nil
	default:
		outputPath := cfg.OutputPath
		if outputPath == "" {
			outputPath = report.DefaultOutputPath(cfg.PDFPath)
		}
		return report.NewDocxFileSink(outputPath), nil
	}
}
