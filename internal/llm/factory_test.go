package llm

import (
	"testing"

	"github.com/rsharda/medreview/internal/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"gemini", "gemini", false},
		{"google", "gemini", false},
		{"GEMINI", "gemini", false},
		{"openai", "openai", false},
		{"anthropic", "anthropic", false},
		{"claude", "anthropic", false},
		{"", "", true},
		{"cohere", "", true},
	}

	for _, tt := range tests {
		t.Run("provider "+tt.provider, func(t *testing.T) {
			p, err := NewProvider(model.LLMConfig{Provider: tt.provider, APIKey: "test-key"})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider(%q): %v", tt.provider, err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %s, want %s", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNewProvider_RequiresKey(t *testing.T) {
	for _, provider := range []string{"gemini", "openai", "anthropic"} {
		if _, err := NewProvider(model.LLMConfig{Provider: provider}); err == nil {
			t.Errorf("%s: expected error without an API key", provider)
		}
	}
}
