package main

import (
	"pdf-referee-go/cmd" // 🚀 CLIのエントリポイント
)

// main はプログラムのエントリポイントです。
// 全ての CLI ロジックは cmd パッケージに委譲します。
func main() {
	cmd.Execute()
}
