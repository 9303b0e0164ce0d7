package config

import "errors"

// 設定の検証エラー。
// ReviewConfig.Validate() から返され、errors.Is による判定を可能にするため
// パッケージレベルのセンチネルエラーとして定義します。
var (
	// ErrNoPDFPath は入力PDFのパスが指定されていない場合に返されます。
	ErrNoPDFPath = errors.New("入力PDFのパスが指定されていません")

	// ErrInvalidPageLimit はページ数制限が負の値の場合に返されます。
	// 0 は「制限なし」を意味するため有効です。
	ErrInvalidPageLimit = errors.New("ページ数制限は正の整数で指定してください")

	// ErrEmptyInstruction はレビュー指示文が空の場合に返されます。
	ErrEmptyInstruction = errors.New("レビュー指示文が空です")

	// ErrInvalidTimeout はタイムアウトが正の値でない場合に返されます。
	ErrInvalidTimeout = errors.New("タイムアウトは正の値で指定してください")
)
