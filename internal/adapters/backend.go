package adapters

import "context"

// ReviewAI は、AIバックエンドとの通信機能の抽象化を提供し、DIで使用されます。
// 実装はモデルごとに1つで、オーケストレータからは宣言順に呼び出されます。
type ReviewAI interface {
	// ModelID はレポートの見出しにも使用されるモデルの正規名を返します。
	ModelID() string

	// GenerateReview は完成されたプロンプトを基にモデルへ査読を依頼します。
	GenerateReview(ctx context.Context, finalPrompt string) (string, error)
}
