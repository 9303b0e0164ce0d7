package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOpenAIAdapterGenerateReview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("expected /v1/chat/completions, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization: got %q, want %q", got, "Bearer sk-test")
		}

		var req openaiChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "o1-preview" {
			t.Errorf("model: got %q, want %q", req.Model, "o1-preview")
		}
		if req.MaxCompletionTokens != 100000 {
			t.Errorf("max_completion_tokens: got %d, want 100000", req.MaxCompletionTokens)
		}

		resp := openaiChatResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "The welfare analysis omits general equilibrium effects."}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	adapter := &OpenAIAdapter{
		BaseURL:             srv.URL,
		APIKey:              "sk-test",
		Model:               "o1-preview",
		MaxCompletionTokens: 100000,
		Client:              &http.Client{Timeout: 5 * time.Second},
	}

	got, err := adapter.GenerateReview(context.Background(), "review this paper")
	if err != nil {
		t.Fatalf("GenerateReview: %v", err)
	}
	if got != "The welfare analysis omits general equilibrium effects." {
		t.Errorf("got %q", got)
	}
}

func TestOpenAIAdapterEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiChatResponse{})
	}))
	defer srv.Close()

	adapter := &OpenAIAdapter{
		BaseURL: srv.URL,
		APIKey:  "sk-test",
		Model:   "o1-preview",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := adapter.GenerateReview(context.Background(), "review this paper"); err == nil {
		t.Error("expected an error for empty choices")
	}
}
