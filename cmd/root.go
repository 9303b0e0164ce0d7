package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pdf-referee-go/internal/config"
	"pdf-referee-go/internal/document"
	"pdf-referee-go/prompts"
)

// rootFlags はコマンドライン引数を保持する構造体です。
type rootFlags struct {
	Output          string
	Pages           int
	Prompt          string
	Clipboard       bool
	ToCoop          bool
	SlackWebhookURL string
	GCSArchiveURI   string
	Timeout         time.Duration
}

var flags = &rootFlags{}

// RootCmd はアプリケーションのベースコマンド（"pdf-referee-go" 本体）です。
var RootCmd = &cobra.Command{
	Use:   "pdf-referee-go <pdf_file>",
	Short: "学術論文のPDFから複数のAIモデルで査読レポートを生成するCLIツールです。",
	Long: `このツールは、指定されたPDFからテキストを抽出し、3つのAIモデル
(Claude / Gemini / OpenAI 推論モデル) に同一のプロンプトで査読を依頼して、
モデルごとにラベル付けした結果を1つのレポートにまとめます。

出力先は次の3つのうち1つです (複数指定時の優先順位: --clipboard > --to_coop > ファイル):
  ファイル       DOCX形式で保存 (デフォルト: referee_report_<basename>.docx)
  --clipboard   プレーンテキストをクリップボードへコピー
  --to_coop     論文とレビューをCoopプラットフォームへアップロード

終了コード:
  0  成功
  2  入力ファイルが見つからない
  3  PDFとして解析できない
  4  モデル呼び出しの失敗
  5  クリップボードが利用できない
  6  Coopへのアップロード失敗
  1  その他のエラー`,
	Args: cobra.ExactArgs(1),
	RunE: runReportCommand,
	// cobra 自身のエラー表示は抑止し、Execute 側で一元的に出力する
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute はルートコマンドを実行し、アプリケーションを起動します。
// 失敗の種類ごとに定義された終了コードでプロセスを終了します。
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func init() {
	RootCmd.Flags().StringVarP(&flags.Output, "output", "o", "",
		"出力先のファイルパス (デフォルト: referee_report_<basename>.docx)")
	RootCmd.Flags().IntVarP(&flags.Pages, "pages", "p", 0,
		"先頭から処理するページ数 (省略時は全ページ)")
	RootCmd.Flags().StringVar(&flags.Prompt, "prompt", prompts.DefaultInstruction,
		"レビューに使用する指示文 (デフォルト: 経済学スタイルの批判的レビュー)")
	RootCmd.Flags().BoolVar(&flags.Clipboard, "clipboard", false,
		"ファイル保存の代わりに結果をクリップボードへコピーする")
	RootCmd.Flags().BoolVar(&flags.ToCoop, "to_coop", false,
		"DOCXを一時ファイルに書き出してCoopへアップロードする")
	RootCmd.Flags().StringVar(&flags.SlackWebhookURL, "slack-webhook-url",
		os.Getenv("SLACK_WEBHOOK_URL"),
		"成功時に完了通知を投稿する Slack Webhook URL")
	RootCmd.Flags().StringVar(&flags.GCSArchiveURI, "gcs-uri", "",
		"レポートのHTMLコピーを保存する GCS URI (例: gs://bucket/path/report.html)")
	RootCmd.Flags().DurationVar(&flags.Timeout, "timeout", 15*time.Minute,
		"実行全体のタイムアウト")
}

// validatePDFPath は、指定されたパスが存在する通常ファイルであるかチェックします。
// ここでの失敗は入力起因のエラーとして、対応する種類のエラーで報告されます。
func validatePDFPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", document.ErrFileNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("パス '%s' の情報取得に失敗しました: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: '%s' はディレクトリです", document.ErrInvalidDocument, path)
	}
	return nil
}

// createReviewConfig はコマンドライン引数から config.ReviewConfig を構築します。
func createReviewConfig(pdfPath string, f *rootFlags) config.ReviewConfig {
	return config.ReviewConfig{
		PDFPath:         pdfPath,
		OutputPath:      f.Output,
		PageLimit:       f.Pages,
		Instruction:     f.Prompt,
		UseClipboard:    f.Clipboard,
		PushToCoop:      f.ToCoop,
		SlackWebhookURL: f.SlackWebhookURL,
		GCSArchiveURI:   f.GCSArchiveURI,
		Timeout:         f.Timeout,
	}
}
