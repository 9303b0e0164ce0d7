package coop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.expectedparrot.com"

// UploadInfo はアップロード済みオブジェクトへの参照です。
// URL は後続のアップロードの説明文に相互参照として埋め込まれます。
type UploadInfo struct {
	UUID string `json:"uuid"`
	URL  string `json:"url"`
}

// Uploader は Coop へのファイルアップロード操作を抽象化するインターフェースです。
type Uploader interface {
	// UploadFile は指定されたファイルを説明文付きでアップロードし、参照情報を返します。
	UploadFile(ctx context.Context, path string, description string) (*UploadInfo, error)
}

// Client は Expected Parrot Coop プラットフォームの HTTP クライアントです。
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient は Client の新しいインスタンスを作成します。
// baseURL が空の場合は本番環境のURLを使用します。
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			// 論文PDFのアップロードを考慮した余裕のあるタイムアウト
			Timeout: 5 * time.Minute,
		},
	}
}

// NewClientFromEnv は環境変数 EXPECTED_PARROT_API_KEY からクライアントを構築します。
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv("EXPECTED_PARROT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("EXPECTED_PARROT_API_KEY environment variable is not set")
	}
	return NewClient(os.Getenv("EXPECTED_PARROT_BASE_URL"), apiKey), nil
}

type coopErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadFile は Uploader インターフェースを満たします。
// ファイルを multipart/form-data で POST し、参照情報 (uuid, url) を返します。
func (c *Client) UploadFile(ctx context.Context, path string, description string) (*UploadInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coop: アップロード対象 '%s' を開けません: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("coop: multipart の構築に失敗しました: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("coop: ファイル内容の読み込みに失敗しました: %w", err)
	}
	if err := mw.WriteField("description", description); err != nil {
		return nil, fmt.Errorf("coop: description フィールドの書き込みに失敗しました: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("coop: multipart のクローズに失敗しました: %w", err)
	}

	url := c.baseURL + "/api/v0/objects"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("coop: リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coop: アップロードリクエストに失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errResp coopErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("coop: unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("coop: API error: %s", errResp.Error.Message)
	}

	var info UploadInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("coop: レスポンスの解析に失敗しました: %w", err)
	}
	if info.UUID == "" {
		return nil, fmt.Errorf("coop: レスポンスに uuid が含まれていません")
	}

	return &info, nil
}
