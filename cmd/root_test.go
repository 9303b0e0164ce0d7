package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"pdf-referee-go/internal/document"
)

// 存在しないファイルパスを指定した場合、モデル呼び出しを試みることなく
// FileNotFound 種別のエラーで終了する。
func TestRootCommandMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no_such_paper.pdf")

	RootCmd.SetArgs([]string{missing})
	err := RootCmd.Execute()

	if !errors.Is(err, document.ErrFileNotFound) {
		t.Fatalf("want ErrFileNotFound, got %v", err)
	}
	if got := exitCode(err); got != exitFileNotFound {
		t.Errorf("exitCode = %d, want %d", got, exitFileNotFound)
	}
}

func TestValidatePDFPathDirectory(t *testing.T) {
	err := validatePDFPath(t.TempDir())
	if !errors.Is(err, document.ErrInvalidDocument) {
		t.Fatalf("want ErrInvalidDocument, got %v", err)
	}
}
