package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"pdf-referee-go/internal/report"
)

// ネットワークのハングアップを防ぐため、通知投稿には短いタイムアウトを設定
const slackNotifyTimeout = 10 * time.Second

// notifySlack は査読レポートの完了通知を Slack Webhook へ投稿します。
// 本文にはレビュー全文ではなく、対象論文と生成に使用したモデルの一覧を載せます。
func notifySlack(ctx context.Context, webhookURL string, result *report.ReviewResult) error {
	modelIDs := make([]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		modelIDs = append(modelIDs, fmt.Sprintf("`%s`", e.ModelID))
	}

	// 通知用の代替テキスト
	notificationText := fmt.Sprintf("✅ 査読レポート完了: %s", result.PaperName)

	// Block Kitコンポーネントの構築
	headerBlock := slack.NewHeaderBlock(
		slack.NewTextBlockObject("plain_text", "🤖 Referee Report Generated", true, false),
	)
	sectionBlock := slack.NewSectionBlock(
		slack.NewTextBlockObject("mrkdwn",
			fmt.Sprintf("*Paper:* %s\n*Models:* %s",
				result.PaperName, strings.Join(modelIDs, ", ")),
			false, false),
		nil,
		nil,
	)

	msg := slack.WebhookMessage{
		Text: notificationText,
		Blocks: &slack.Blocks{
			BlockSet: []slack.Block{headerBlock, sectionBlock},
		},
	}

	jsonPayload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal Slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := &http.Client{Timeout: slackNotifyTimeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post Slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}

	return nil
}
