package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
)

// 見出し行の文字サイズ (half-point 単位、32 = 16pt)
const headingFontSize = "32"

// DocxFileSink はレビュー結果をDOCXドキュメントとしてファイルに書き出します。
type DocxFileSink struct {
	OutputPath string
}

// NewDocxFileSink は DocxFileSink の新しいインスタンスを作成します。
func NewDocxFileSink(outputPath string) *DocxFileSink {
	return &DocxFileSink{OutputPath: outputPath}
}

// DefaultOutputPath は入力PDF名から出力先のデフォルトパスを導出します。
// 例: paper.pdf → referee_report_paper.docx
func DefaultOutputPath(pdfPath string) string {
	base := filepath.Base(pdfPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("referee_report_%s.docx", stem)
}

// Write は Sink インターフェースを満たします。
func (s *DocxFileSink) Write(ctx context.Context, result *ReviewResult) error {
	return WriteDocx(s.OutputPath, result)
}

// WriteDocx はレビュー結果をDOCX形式で指定パスに書き込みます。
// Coop Sink が一時ファイルを生成する際にも再利用されます。
func WriteDocx(path string, result *ReviewResult) error {
	doc := buildDocx(result)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("出力ファイル '%s' の作成に失敗しました: %w", path, err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("DOCXドキュメントの書き込みに失敗しました: %w", err)
	}

	slog.Info("DOCXレポートを書き込みました。", "path", path, "models", len(result.Entries))
	return nil
}

// buildDocx はモデルの宣言順に「見出し + 本文」のセクションを組み立てます。
func buildDocx(result *ReviewResult) *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	for _, e := range result.Entries {
		heading := doc.AddParagraph()
		heading.AddText(Heading(e.ModelID)).Size(headingFontSize).Bold()

		// モデル出力の改行を段落として維持する
		for _, line := range strings.Split(e.Text, "\n") {
			doc.AddParagraph().AddText(line)
		}

		// セクション間の空行
		doc.AddParagraph()
	}

	return doc
}
