package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable はプラットフォームにアクセス可能なクリップボードが
// 存在しない場合に返されます。
var ErrClipboardUnavailable = errors.New("クリップボードが利用できません")

// ClipboardSink はレビュー結果をプレーンテキストとしてシステムの
// クリップボードに書き込みます。
type ClipboardSink struct{}

// NewClipboardSink は ClipboardSink の新しいインスタンスを作成します。
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{}
}

// Write は Sink インターフェースを満たします。
func (s *ClipboardSink) Write(ctx context.Context, result *ReviewResult) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: この環境ではクリップボード操作がサポートされていません", ErrClipboardUnavailable)
	}

	if err := clipboard.WriteAll(result.PlainText()); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}

	slog.Info("レビュー結果をクリップボードにコピーしました。", "models", len(result.Entries))
	return nil
}
