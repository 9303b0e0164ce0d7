package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

// DefaultInstruction はレビュー指示文のデフォルト値です。
// 元ツールとの互換性のため、この文字列はそのまま維持します。
const DefaultInstruction = "Write a full economics-style critical review of this paper:"

// RefereePromptTemplate は査読プロンプトのテンプレートを保持します。
//
//go:embed referee_review_prompt.md
var RefereePromptTemplate string

// ----------------------------------------------------------------
// テンプレート構造体
// ----------------------------------------------------------------

// ReviewTemplateData は査読プロンプトのテンプレートに渡すデータ構造です。
type ReviewTemplateData struct {
	Instruction string // レビュー指示文
	PaperText   string // 論文から抽出したテキスト
}

// ----------------------------------------------------------------
// ビルダー実装
// ----------------------------------------------------------------

// ReviewPromptBuilder は査読プロンプトの構成を管理します。
// 全モデルに同一のプロンプトを送るため、ビルドは1回のみ行われます。
type ReviewPromptBuilder struct {
	// 指示文と論文テキストを埋め込むための text/template を保持します
	tmpl *template.Template
}

// NewReviewPromptBuilder は ReviewPromptBuilder を初期化します。
// テンプレート文字列を受け取り、それをパースして *template.Template を保持します。
// name はテンプレートの名前であり、主にデバッグやエラーメッセージの識別に利用されます。
func NewReviewPromptBuilder(name string, templateContent string) (*ReviewPromptBuilder, error) {
	if templateContent == "" {
		return nil, fmt.Errorf("プロンプトテンプレートの内容が空です")
	}

	tmpl, err := template.New(name).Parse(templateContent)
	if err != nil {
		return nil, fmt.Errorf("プロンプトテンプレートの解析に失敗しました: %w", err)
	}
	return &ReviewPromptBuilder{tmpl: tmpl}, nil
}

// Build は ReviewTemplateData を埋め込み、各モデルへ送る最終的なプロンプト文字列を完成させます。
func (b *ReviewPromptBuilder) Build(data ReviewTemplateData) (string, error) {
	if b.tmpl == nil {
		return "", fmt.Errorf("プロンプトテンプレートが初期化されていません。NewReviewPromptBuilder が正しく呼び出されたか確認してください")
	}
	if strings.TrimSpace(data.PaperText) == "" {
		return "", fmt.Errorf("論文テキストが空です。PDFからテキストを抽出できていない可能性があります")
	}
	if data.Instruction == "" {
		data.Instruction = DefaultInstruction
	}

	var sb strings.Builder
	if err := b.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("査読プロンプトの組み立てに失敗しました: %w", err)
	}

	return sb.String(), nil
}
