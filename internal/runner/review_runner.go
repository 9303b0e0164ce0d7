package runner

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"pdf-referee-go/internal/adapters"
	"pdf-referee-go/internal/config"
	"pdf-referee-go/internal/document"
	"pdf-referee-go/internal/report"
	"pdf-referee-go/prompts"
)

// ModelInvocationError は特定のモデル呼び出しの失敗を表します。
// どのモデルが失敗したかを呼び出し元が識別できるよう、ModelID を保持します。
type ModelInvocationError struct {
	ModelID string
	Err     error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("モデル %s の呼び出しに失敗しました: %v", e.ModelID, e.Err)
}

func (e *ModelInvocationError) Unwrap() error {
	return e.Err
}

// ReviewRunner は査読レポート生成のビジネスロジックを実行します。
// 必要な依存関係（リゾルバ、プロンプトビルダー、各モデルのアダプタ）を
// フィールドとして保持します。
type ReviewRunner struct {
	resolver      *document.Resolver
	promptBuilder *prompts.ReviewPromptBuilder
	backends      []adapters.ReviewAI
}

// NewReviewRunner は ReviewRunner の新しいインスタンスを生成します。
// 依存関係はコンストラクタ経由で注入されます。backends の並び順が
// そのままレポート内のセクション順になります。
func NewReviewRunner(
	resolver *document.Resolver,
	promptBuilder *prompts.ReviewPromptBuilder,
	backends []adapters.ReviewAI,
) *ReviewRunner {
	return &ReviewRunner{
		resolver:      resolver,
		promptBuilder: promptBuilder,
		backends:      backends,
	}
}

// Run は入力PDFを解決し、全モデルで査読を実行して順序付きの結果を返します。
// いずれかのモデル呼び出しが失敗した場合、部分的な結果は返さず全体を失敗させます。
func (r *ReviewRunner) Run(ctx context.Context, cfg config.ReviewConfig) (*report.ReviewResult, error) {
	// 1. 入力PDFの解決とテキスト抽出
	slog.Info("入力PDFの解決を開始します。", "path", cfg.PDFPath, "page_limit", cfg.PageLimit)
	paper, err := r.resolver.Resolve(cfg.PDFPath, cfg.PageLimit)
	if err != nil {
		return nil, err
	}

	// 2. プロンプトの組み立て (全モデル共通)
	finalPrompt, err := r.promptBuilder.Build(prompts.ReviewTemplateData{
		Instruction: cfg.Instruction,
		PaperText:   paper.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("プロンプトの組み立てに失敗しました: %w", err)
	}
	slog.Info("査読プロンプトを生成しました。", "prompt_bytes", len(finalPrompt))

	// 3. 全モデルでの査読実行
	entries, err := r.generateReviews(ctx, finalPrompt)
	if err != nil {
		return nil, err
	}

	return &report.ReviewResult{
		PaperName: paper.Name,
		PaperPath: paper.Path,
		Entries:   entries,
	}, nil
}

// generateReviews は全バックエンドを並列に呼び出します。
// 結果はバックエンドの宣言順のスロットに書き込むため、各呼び出しの完了順に
// かかわらず出力順は常に安定します。最初の失敗で残りをキャンセルし、
// 部分的な結果は破棄します。
func (r *ReviewRunner) generateReviews(ctx context.Context, finalPrompt string) ([]report.Entry, error) {
	texts := make([]string, len(r.backends))

	g, gctx := errgroup.WithContext(ctx)
	for i, backend := range r.backends {
		g.Go(func() error {
			slog.Info("AI査読を開始します。", "model", backend.ModelID())
			text, err := backend.GenerateReview(gctx, finalPrompt)
			if err != nil {
				return &ModelInvocationError{ModelID: backend.ModelID(), Err: err}
			}
			slog.Info("AI査読の取得に成功しました。", "model", backend.ModelID(), "text_bytes", len(text))
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]report.Entry, len(r.backends))
	for i, backend := range r.backends {
		entries[i] = report.Entry{ModelID: backend.ModelID(), Text: texts[i]}
	}
	return entries, nil
}
