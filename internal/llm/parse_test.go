package llm

import (
	"testing"

	"github.com/rsharda/medreview/internal/model"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.input); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeReview(t *testing.T) {
	raw := "```json\n" + `{
		"overall_score": 65,
		"summary": {"total_claims": 1, "needs_pubmed_check": 1},
		"claims": [{
			"id": "CLM-001",
			"claim_text": "Superior glycemic control",
			"claim_type": "COMPARATIVE_CLAIM",
			"location": "headline",
			"evidence_status": "NEEDS_PUBMED_CHECK",
			"severity": "MAJOR"
		}],
		"pubmed_queries_needed": [{"claim_id": "CLM-001", "query": "glycemic control comparison"}],
		"unexpected_field": "ignored"
	}` + "\n```"

	review, err := DecodeReview(raw)
	if err != nil {
		t.Fatalf("DecodeReview: %v", err)
	}
	if review.OverallScore != 65 {
		t.Errorf("overall_score = %d, want 65", review.OverallScore)
	}
	if len(review.Claims) != 1 {
		t.Fatalf("claims = %d, want 1", len(review.Claims))
	}
	claim := review.Claims[0]
	if claim.ClaimType != model.ClaimComparative {
		t.Errorf("claim_type = %s", claim.ClaimType)
	}
	if claim.EvidenceStatus != model.StatusNeedsPubMedCheck {
		t.Errorf("evidence_status = %s", claim.EvidenceStatus)
	}
	if claim.Severity != model.SeverityMajor {
		t.Errorf("severity = %s", claim.Severity)
	}
	if len(review.PubMedQueriesNeeded) != 1 || review.PubMedQueriesNeeded[0].ClaimID != "CLM-001" {
		t.Errorf("pubmed_queries_needed = %v", review.PubMedQueriesNeeded)
	}
}

func TestDecodeReview_MissingOptionalFields(t *testing.T) {
	review, err := DecodeReview(`{"overall_score": 100, "claims": []}`)
	if err != nil {
		t.Fatalf("DecodeReview: %v", err)
	}
	if review.PubMedQueriesNeeded != nil {
		t.Errorf("absent field should stay nil, got %v", review.PubMedQueriesNeeded)
	}
	if len(review.Recommendations.ImmediateActions) != 0 {
		t.Errorf("recommendations should be empty, got %v", review.Recommendations)
	}
}

func TestDecodeReview_InvalidJSON(t *testing.T) {
	for _, raw := range []string{"", "not json", "```json\ntruncated {\n```"} {
		if _, err := DecodeReview(raw); err == nil {
			t.Errorf("DecodeReview(%q): expected an error", raw)
		}
	}
}
