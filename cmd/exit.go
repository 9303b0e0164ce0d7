package cmd

import (
	"errors"

	"pdf-referee-go/internal/coop"
	"pdf-referee-go/internal/document"
	"pdf-referee-go/internal/report"
	"pdf-referee-go/internal/runner"
)

// 失敗の種類ごとの終了コード。ヘルプテキストに明記される契約であり、変更しません。
const (
	exitOK               = 0
	exitGeneric          = 1
	exitFileNotFound     = 2
	exitInvalidDocument  = 3
	exitModelInvocation  = 4
	exitClipboardFailure = 5
	exitPlatformUpload   = 6
)

// exitCode はエラーの種類を終了コードへ対応付けます。
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var invErr *runner.ModelInvocationError
	var uploadErr *coop.UploadError

	switch {
	case errors.Is(err, document.ErrFileNotFound):
		return exitFileNotFound
	case errors.Is(err, document.ErrInvalidDocument):
		return exitInvalidDocument
	case errors.As(err, &invErr):
		return exitModelInvocation
	case errors.Is(err, report.ErrClipboardUnavailable):
		return exitClipboardFailure
	case errors.As(err, &uploadErr):
		return exitPlatformUpload
	default:
		return exitGeneric
	}
}
