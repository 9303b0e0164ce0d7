package report

import "context"

// Sink はレビュー結果の出力先を抽象化するインターフェースです。
// 1回の実行で有効になる Sink は常に1つだけです。
// 実装を差し替えることで、オーケストレーションのロジックに触れずに
// 出力先 (ファイル / クリップボード / Coop) を切り替えられます。
type Sink interface {
	// Write はレビュー結果を出力先に書き込みます。
	Write(ctx context.Context, result *ReviewResult) error
}
