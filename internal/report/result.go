package report

import (
	"fmt"
	"strings"
)

// Entry は1つのモデルによる査読結果です。
type Entry struct {
	ModelID string // モデルの正規名 (見出しに使用)
	Text    string // モデルが生成した査読本文
}

// ReviewResult はオーケストレータが組み立てる順序付きの査読結果です。
// Entries の並びはモデルの宣言順で固定され、生成後に変更されることはありません。
type ReviewResult struct {
	PaperName string // 入力PDFのファイル名
	PaperPath string // 入力PDFのパス (Coopアップロードに使用)
	Entries   []Entry
}

// Heading はモデルごとのレポート見出しを返します。
// この文字列形式は成果物の互換性契約であり、変更しません。
func Heading(modelID string) string {
	return fmt.Sprintf("Review by %s", modelID)
}

// PlainText はクリップボード向けのプレーンテキスト表現を返します。
// 見出しは Markdown 風の1行 (# Review by <model>) で、モデルの宣言順に連結します。
func (r *ReviewResult) PlainText() string {
	var sb strings.Builder
	for _, e := range r.Entries {
		sb.WriteString("# ")
		sb.WriteString(Heading(e.ModelID))
		sb.WriteString("\n\n")
		sb.WriteString(e.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Markdown は Markdown 表現を返します。GCSアーカイブのHTML変換入力に使用します。
func (r *ReviewResult) Markdown() string {
	var sb strings.Builder
	for _, e := range r.Entries {
		sb.WriteString("## ")
		sb.WriteString(Heading(e.ModelID))
		sb.WriteString("\n\n")
		sb.WriteString(e.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
