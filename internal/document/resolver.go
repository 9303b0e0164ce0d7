package document

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// 入力PDFの解決エラー。
// いずれもユーザー入力に起因するため、リトライせず即座に呼び出し元へ返します。
var (
	// ErrFileNotFound は指定されたパスが存在しない場合に返されます。
	ErrFileNotFound = errors.New("指定されたPDFファイルが見つかりません")

	// ErrInvalidDocument は内容をPDFとして解析できない場合に返されます。
	ErrInvalidDocument = errors.New("PDFドキュメントとして解析できません")
)

// Paper は解決済みの入力ドキュメントを表します。
// Text にはページ制限適用後の抽出テキストが入ります。
type Paper struct {
	Path      string // 入力ファイルの絶対または相対パス
	Name      string // ファイル名 (アップロード時の説明文などに使用)
	PageCount int    // ドキュメント全体のページ数
	UsedPages int    // 実際にテキスト抽出したページ数
	Text      string // 抽出したプレーンテキスト
}

// Resolver は入力PDFの存在確認とテキスト抽出を担当します。
type Resolver struct{}

// NewResolver は Resolver の新しいインスタンスを作成します。
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve はファイルパスを検証し、先頭 pageLimit ページ分のテキストを抽出します。
// pageLimit が 0 以下、またはページ数を超える場合はドキュメント全体を使用します。
func (r *Resolver) Resolve(path string, pageLimit int) (*Paper, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("パス '%s' の情報取得に失敗しました: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' はディレクトリです", ErrInvalidDocument, path)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%v)", ErrInvalidDocument, path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	if total < 1 {
		return nil, fmt.Errorf("%w: %s にページが含まれていません", ErrInvalidDocument, path)
	}

	used := clampPageLimit(pageLimit, total)
	text, err := extractText(reader, used)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%v)", ErrInvalidDocument, path, err)
	}

	slog.Info("入力PDFを解決しました。",
		"path", path,
		"pages_total", total,
		"pages_used", used,
		"text_bytes", len(text),
	)

	return &Paper{
		Path:      path,
		Name:      filepath.Base(path),
		PageCount: total,
		UsedPages: used,
		Text:      text,
	}, nil
}

// clampPageLimit はページ制限をドキュメントの実ページ数に丸めます。
// limit が 0 以下の場合は「制限なし」として全ページを返します。
func clampPageLimit(limit, total int) int {
	if limit <= 0 || limit > total {
		return total
	}
	return limit
}

// extractText は先頭 pages ページ分のプレーンテキストを連結して返します。
// ページ区切りには改ページ文字を使用します。
func extractText(reader *pdf.Reader, pages int) (string, error) {
	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("ページ %d のテキスト抽出に失敗しました: %w", i, err)
		}
		sb.WriteString(pageText)
		if i < pages {
			sb.WriteString("\n\f\n")
		}
	}
	return sb.String(), nil
}
