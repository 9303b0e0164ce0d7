package config

import (
	"fmt"
	"time"
)

// ReviewConfig は査読レポート生成に必要なすべての設定を含みます。
// この構造体は、コマンドライン引数からサービスロジックへ設定を渡すための共通のデータモデルです。
type ReviewConfig struct {
	// 必須引数
	PDFPath string

	// 任意の引数 (デフォルト値あり)
	OutputPath  string // 出力先のDOCXファイルパス (空の場合は referee_report_<basename>.docx)
	PageLimit   int    // 先頭から処理するページ数 (0 は無制限)
	Instruction string // レビュー指示文 (デフォルトは経済学スタイルの批判的レビュー)

	// 出力先のフラグ
	UseClipboard bool // クリップボードへ出力する
	PushToCoop   bool // Coop プラットフォームへアップロードする

	// 補助的な連携オプション
	SlackWebhookURL string        // 成功時に通知を送る Slack Webhook URL
	GCSArchiveURI   string        // レポートのHTMLコピーを保存する GCS URI (gs://...)
	Timeout         time.Duration // 実行全体のタイムアウト
}

// SinkMode はレビュー結果の出力先を表します。
type SinkMode string

const (
	SinkFile      SinkMode = "file"
	SinkClipboard SinkMode = "clipboard"
	SinkCoop      SinkMode = "coop"
)

// SelectedSink は設定されたフラグから出力先を決定します。
// 複数のフラグが同時に指定された場合の優先順位は clipboard > coop > file で固定です。
// この優先順位はヘルプテキストにも明記されています。
func (c *ReviewConfig) SelectedSink() SinkMode {
	switch {
	case c.UseClipboard:
		return SinkClipboard
	case c.PushToCoop:
		return SinkCoop
	default:
		return SinkFile
	}
}

// Validate は設定値の整合性を検証します。
// ユーザー入力に起因する問題はこの段階で検出し、モデル呼び出しの前に終了させます。
func (c *ReviewConfig) Validate() error {
	if c.PDFPath == "" {
		return ErrNoPDFPath
	}
	if c.PageLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageLimit, c.PageLimit)
	}
	if c.Instruction == "" {
		return ErrEmptyInstruction
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	return nil
}
