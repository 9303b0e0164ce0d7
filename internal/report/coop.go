package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pdf-referee-go/internal/coop"
)

// CoopSink は元の論文と生成したレビューを Coop プラットフォームへ
// 相互参照付きでアップロードします。手順:
//  1. 論文PDFを説明文付きでアップロード
//  2. レビューを一時DOCXファイルに書き出し
//  3. 論文アップロードのURLを参照する説明文付きでレビューをアップロード
//  4. 一時ファイルを削除
type CoopSink struct {
	uploader coop.Uploader
}

// NewCoopSink は CoopSink の新しいインスタンスを作成します。
func NewCoopSink(uploader coop.Uploader) *CoopSink {
	return &CoopSink{uploader: uploader}
}

// Write は Sink インターフェースを満たします。
func (s *CoopSink) Write(ctx context.Context, result *ReviewResult) error {
	// 1. 論文本体のアップロード
	paperInfo, err := s.uploader.UploadFile(ctx, result.PaperPath,
		fmt.Sprintf("Paper being reviewed: %s", result.PaperName))
	if err != nil {
		return &coop.UploadError{Stage: coop.StagePaper, Err: err}
	}
	slog.Info("論文をCoopへアップロードしました。", "uuid", paperInfo.UUID, "url", paperInfo.URL)

	// 2. レビューを一時DOCXファイルへ書き出し
	// os.CreateTemp により、同時実行でもファイル名は衝突しない
	tmp, err := os.CreateTemp("", "referee_report_*.docx")
	if err != nil {
		return &coop.UploadError{Stage: coop.StageReview,
			Err: fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)}
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			slog.Warn("一時ファイルの削除に失敗しました。", "path", tmpPath, "error", rmErr)
		}
	}()

	if err := WriteDocx(tmpPath, result); err != nil {
		return &coop.UploadError{Stage: coop.StageReview, Err: err}
	}
	slog.Info("レビューを一時ファイルに書き出しました。", "path", tmpPath)

	// 3. レビューのアップロード (論文側のURLを相互参照として埋め込む)
	paperURL := paperInfo.URL
	if paperURL == "" {
		paperURL = "unknown"
	}
	reviewInfo, err := s.uploader.UploadFile(ctx, tmpPath,
		fmt.Sprintf("Review of paper: %s. Paper at %s", result.PaperName, paperURL))
	if err != nil {
		// NOTE: 論文側のアップロードはロールバックしない (既知の制限)
		return &coop.UploadError{Stage: coop.StageReview, Err: err}
	}
	slog.Info("レビューをCoopへアップロードしました。", "uuid", reviewInfo.UUID, "url", reviewInfo.URL)

	return nil
}
