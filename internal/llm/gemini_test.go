package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rsharda/medreview/internal/model"
)

func geminiReply(text string) geminiResponse {
	var resp geminiResponse
	resp.Candidates = []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	}{
		{FinishReason: "STOP"},
	}
	resp.Candidates[0].Content.Parts = []geminiPart{{Text: text}}
	return resp
}

func TestGeminiProvider_Extract_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("Expected generateContent endpoint, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("Expected key query parameter, got %s", r.URL.Query().Get("key"))
		}
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash") {
			t.Errorf("Expected default model in path, got %s", r.URL.Path)
		}

		_ = json.NewEncoder(w).Encode(geminiReply("```json\n" + reviewJSON + "\n```"))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(model.LLMConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	review, err := provider.Extract(context.Background(), ExtractRequest{Collateral: "collateral"})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if review.OverallScore != 80 || len(review.Claims) != 1 {
		t.Errorf("Unexpected review: %+v", review)
	}
}

func TestGeminiProvider_Extract_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(model.LLMConfig{
		APIKey:  "bad-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Extract(context.Background(), ExtractRequest{Collateral: "text"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("Expected API error message, got %v", err)
	}
}

func TestGeminiProvider_Extract_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(model.LLMConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Extract(context.Background(), ExtractRequest{Collateral: "text"})
	if err == nil {
		t.Fatal("Expected error for empty candidates")
	}
}

func TestGeminiProvider_Extract_ModelOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-pro") {
			t.Errorf("Expected overridden model in path, got %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(geminiReply(reviewJSON))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(model.LLMConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.Extract(context.Background(), ExtractRequest{Collateral: "text", Model: "gemini-2.5-pro"}); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(model.LLMConfig{}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}
