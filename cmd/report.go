package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pdf-referee-go/internal/builder"
)

// runReportCommand はコマンドの主要な実行ロジックを含みます。
// Resolver → Prompt Builder → Orchestrator → Sink の直列パイプラインを実行します。
func runReportCommand(cmd *cobra.Command, args []string) error {
	cfg := createReviewConfig(args[0], flags)

	// 1. 設定の検証 (ユーザー入力エラーはモデル呼び出しの前に弾く)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. 入力パスの有効性チェック
	// ※ バックエンドの構築 (APIキーの検証など) より前に、入力起因の失敗を確定させる
	if err := validatePDFPath(cfg.PDFPath); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	slog.Info("査読レポートの生成を開始します。",
		"pdf", cfg.PDFPath,
		"page_limit", cfg.PageLimit,
		"sink", string(cfg.SelectedSink()),
	)

	// 3. 出力先の構築 (認証情報の不足などはレビュー実行前に検出する)
	sink, err := builder.BuildSink(cfg)
	if err != nil {
		return err
	}

	// 4. 依存関係の構築 (Builder パッケージを使用)
	reviewRunner, err := builder.BuildReviewRunner(ctx, cfg)
	if err != nil {
		return fmt.Errorf("Review Runner の構築に失敗しました: %w", err)
	}

	// 5. 査読パイプラインの実行
	result, err := reviewRunner.Run(ctx, cfg)
	if err != nil {
		return err
	}

	// 6. 結果の出力
	if err := sink.Write(ctx, result); err != nil {
		return err
	}
	slog.Info("レビュー結果を出力しました。", "sink", string(cfg.SelectedSink()))

	// 7. 任意のGCSアーカイブ (明示的な指定があった場合のみ。失敗は実行全体の失敗)
	if cfg.GCSArchiveURI != "" {
		if err := archiveToGCS(ctx, cfg.GCSArchiveURI, result); err != nil {
			return err
		}
	}

	// 8. 任意のSlack完了通知 (通知失敗でレポート生成自体は失敗させない)
	if cfg.SlackWebhookURL != "" {
		if err := notifySlack(ctx, cfg.SlackWebhookURL, result); err != nil {
			slog.Warn("Slackへの完了通知に失敗しました。", "error", err)
		}
	}

	return nil
}
