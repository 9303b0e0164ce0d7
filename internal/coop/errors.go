package coop

import "fmt"

// アップロード段階の識別子。UploadError.Stage に設定されます。
const (
	StagePaper  = "paper"
	StageReview = "review"
)

// UploadError は Coop へのアップロード失敗を、失敗した段階とともに表します。
// 論文のアップロード成功後にレビューのアップロードが失敗した場合でも、
// 論文側のロールバックは行いません (既知の制限)。
type UploadError struct {
	Stage string // StagePaper または StageReview
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("Coopへのアップロードに失敗しました (stage: %s): %v", e.Stage, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
