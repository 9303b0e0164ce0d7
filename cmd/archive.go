package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-remote-io/pkg/factory"
	"github.com/shouni/go-text-format/pkg/builder"

	"pdf-referee-go/internal/report"
)

// GCSアーカイブのMIMEタイプ (スタイル付きHTMLとして保存する)
const archiveContentType = "text/html; charset=utf-8"

// archiveToGCS はレビュー結果をスタイル付きHTMLに変換し、指定されたGCS URIへ保存します。
// 宛先 URI は 'gs://bucket-name/object-path' の形式である必要があります。
func archiveToGCS(ctx context.Context, gcsURI string, result *report.ReviewResult) error {
	bucketName, objectPath, err := validateGcsURI(gcsURI)
	if err != nil {
		return err
	}

	// 1. HTML変換
	title := fmt.Sprintf("Referee Report: %s", result.PaperName)
	htmlBuffer, err := convertMarkdownToHTML(ctx, title, result.Markdown())
	if err != nil {
		return fmt.Errorf("レビュー結果のHTML変換に失敗しました: %w", err)
	}

	// 2. GCSへのアップロードを実行
	slog.Info("レポートのアーカイブをGCSへアップロード中",
		"uri", gcsURI,
		"bucket", bucketName,
		"object", objectPath,
		"content_type", archiveContentType)
	if err := uploadToGCS(ctx, bucketName, objectPath, htmlBuffer); err != nil {
		return fmt.Errorf("GCSへの書き込みに失敗しました (URI: %s): %w", gcsURI, err)
	}
	slog.Info("GCSへのアップロードが完了しました。", "uri", gcsURI)

	return nil
}

// convertMarkdownToHTML はMarkdown形式の入力データを受け取り、HTML形式のデータに変換します。
func convertMarkdownToHTML(ctx context.Context, title string, markdown string) (*bytes.Buffer, error) {
	htmlBuilder, err := builder.NewBuilder()
	if err != nil {
		return nil, err
	}

	mk2html, err := htmlBuilder.BuildMarkdownToHtmlRunner()
	if err != nil {
		return nil, err
	}

	// タイトルとMarkdownコンテンツを結合
	var combinedContentBuffer bytes.Buffer
	combinedContentBuffer.WriteString("# " + title)
	combinedContentBuffer.WriteString("\n\n")
	combinedContentBuffer.WriteString(markdown)

	return mk2html.ConvertMarkdownToHtml(ctx, title, combinedContentBuffer.Bytes())
}

// uploadToGCS はレンダリングされたHTMLをGCSにアップロードします。
func uploadToGCS(ctx context.Context, bucketName, objectPath string, content io.Reader) error {
	clientFactory, err := factory.NewClientFactory(ctx)
	if err != nil {
		return err
	}
	writer, err := clientFactory.NewOutputWriter()
	if err != nil {
		return err
	}

	return writer.WriteToGCS(ctx, bucketName, objectPath, content, archiveContentType)
}

// validateGcsURI は GCS URIの検証と解析を行うヘルパー関数です。
func validateGcsURI(gcsURI string) (bucketName, objectPath string, err error) {
	if !strings.HasPrefix(gcsURI, "gs://") {
		return "", "", fmt.Errorf("無効なGCS URIです。'gs://' で始まる必要があります: %s", gcsURI)
	}
	pathWithoutScheme := gcsURI[5:]
	parts := strings.SplitN(pathWithoutScheme, "/", 2)

	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("無効なGCS URIフォーマットです。バケット名とオブジェクトパスが不足しています: %s", gcsURI)
	}
	return parts[0], parts[1], nil
}
