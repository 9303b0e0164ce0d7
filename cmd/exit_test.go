package cmd

import (
	"errors"
	"fmt"
	"testing"

	"pdf-referee-go/internal/coop"
	"pdf-referee-go/internal/document"
	"pdf-referee-go/internal/report"
	"pdf-referee-go/internal/runner"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"file not found",
			fmt.Errorf("resolve: %w", document.ErrFileNotFound), exitFileNotFound},
		{"invalid document",
			fmt.Errorf("resolve: %w", document.ErrInvalidDocument), exitInvalidDocument},
		{"model invocation",
			&runner.ModelInvocationError{ModelID: "o1-preview", Err: errors.New("quota")},
			exitModelInvocation},
		{"clipboard unavailable",
			fmt.Errorf("sink: %w", report.ErrClipboardUnavailable), exitClipboardFailure},
		{"platform upload",
			&coop.UploadError{Stage: coop.StageReview, Err: errors.New("403")},
			exitPlatformUpload},
		{"anything else", errors.New("boom"), exitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
