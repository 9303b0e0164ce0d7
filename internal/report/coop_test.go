package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"pdf-referee-go/internal/coop"
)

type fakeUploader struct {
	descriptions []string
	failOnCall   int // 1始まり。0 は常に成功
}

func (f *fakeUploader) UploadFile(ctx context.Context, path, description string) (*coop.UploadInfo, error) {
	call := len(f.descriptions) + 1
	if f.failOnCall != 0 && call >= f.failOnCall {
		return nil, fmt.Errorf("simulated upload failure")
	}
	f.descriptions = append(f.descriptions, description)
	return &coop.UploadInfo{
		UUID: fmt.Sprintf("uuid-%d", call),
		URL:  fmt.Sprintf("https://coop.example/obj/%d", call),
	}, nil
}

func testResult() *ReviewResult {
	return &ReviewResult{
		PaperName: "paper.pdf",
		PaperPath: "/tmp/paper.pdf",
		Entries:   []Entry{{ModelID: "modelA", Text: "textA"}},
	}
}

func TestCoopSinkUploadsPaperThenReview(t *testing.T) {
	up := &fakeUploader{}
	sink := NewCoopSink(up)

	if err := sink.Write(context.Background(), testResult()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if len(up.descriptions) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(up.descriptions))
	}
	if up.descriptions[0] != "Paper being reviewed: paper.pdf" {
		t.Errorf("paper description: %q", up.descriptions[0])
	}
	if !strings.HasPrefix(up.descriptions[1], "Review of paper: paper.pdf. Paper at https://coop.example/obj/1") {
		t.Errorf("review description does not cross-reference the paper: %q", up.descriptions[1])
	}
}

func TestCoopSinkPaperUploadFailure(t *testing.T) {
	up := &fakeUploader{failOnCall: 1}
	sink := NewCoopSink(up)

	err := sink.Write(context.Background(), testResult())
	var uploadErr *coop.UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("want *coop.UploadError, got %v", err)
	}
	if uploadErr.Stage != coop.StagePaper {
		t.Errorf("stage: got %q, want %q", uploadErr.Stage, coop.StagePaper)
	}
	if len(up.descriptions) != 0 {
		t.Error("no upload should have succeeded")
	}
}

func TestCoopSinkReviewUploadFailure(t *testing.T) {
	up := &fakeUploader{failOnCall: 2}
	sink := NewCoopSink(up)

	err := sink.Write(context.Background(), testResult())
	var uploadErr *coop.UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("want *coop.UploadError, got %v", err)
	}
	if uploadErr.Stage != coop.StageReview {
		t.Errorf("stage: got %q, want %q", uploadErr.Stage, coop.StageReview)
	}
	// 論文側のアップロードは成功したまま残る (ロールバックしない)
	if len(up.descriptions) != 1 {
		t.Errorf("expected exactly the paper upload to have succeeded, got %d", len(up.descriptions))
	}
}
