package validate

import (
	"strings"
	"testing"

	"github.com/rsharda/medreview/internal/model"
)

func validClaim() model.Claim {
	return model.Claim{
		ID:             "CLM-001",
		ClaimText:      "Reduces HbA1c by 1.5%",
		ClaimType:      model.ClaimEfficacy,
		EvidenceStatus: model.StatusSubstantiatedBackup,
		Severity:       model.SeverityNone,
	}
}

func TestValidate_CleanReview(t *testing.T) {
	v := NewValidator()
	review := &model.Review{
		OverallScore: 85,
		Claims:       []model.Claim{validClaim()},
	}

	ok, problems := v.Validate(review)
	if !ok || len(problems) != 0 {
		t.Errorf("expected clean review to validate, got problems %v", problems)
	}
}

func TestValidate_EmptyReview(t *testing.T) {
	v := NewValidator()
	ok, _ := v.Validate(&model.Review{OverallScore: 100})
	if !ok {
		t.Error("a review with no claims is structurally sound")
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Review)
		want   string
	}{
		{
			"score above range",
			func(r *model.Review) { r.OverallScore = 101 },
			"out of range",
		},
		{
			"score below range",
			func(r *model.Review) { r.OverallScore = -1 },
			"out of range",
		},
		{
			"missing id",
			func(r *model.Review) { r.Claims[0].ID = "" },
			"missing id",
		},
		{
			"missing claim text",
			func(r *model.Review) { r.Claims[0].ClaimText = "" },
			"missing claim_text",
		},
		{
			"unknown claim type",
			func(r *model.Review) { r.Claims[0].ClaimType = "MARKETING_CLAIM" },
			"invalid claim_type",
		},
		{
			"unknown evidence status",
			func(r *model.Review) { r.Claims[0].EvidenceStatus = "VERIFIED" },
			"invalid evidence_status",
		},
		{
			"unknown severity",
			func(r *model.Review) { r.Claims[0].Severity = "FATAL" },
			"invalid severity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			review := &model.Review{OverallScore: 50, Claims: []model.Claim{validClaim()}}
			tt.mutate(review)

			ok, problems := v.Validate(review)
			if ok {
				t.Fatal("expected validation to fail")
			}
			found := false
			for _, p := range problems {
				if strings.Contains(p, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a problem containing %q, got %v", tt.want, problems)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	v := NewValidator()
	review := &model.Review{
		OverallScore: 200,
		Claims: []model.Claim{
			{ClaimType: "BOGUS", EvidenceStatus: "BOGUS", Severity: "BOGUS"},
		},
	}

	ok, problems := v.Validate(review)
	if ok {
		t.Fatal("expected validation to fail")
	}
	// Score, missing id, missing text, and the three enums.
	if len(problems) != 6 {
		t.Errorf("expected 6 problems, got %d: %v", len(problems), problems)
	}
}

func TestValidate_UnnamedClaimsUseIndexLabel(t *testing.T) {
	v := NewValidator()
	review := &model.Review{
		OverallScore: 50,
		Claims: []model.Claim{
			validClaim(),
			{ClaimText: "second", ClaimType: model.ClaimSafety, EvidenceStatus: model.StatusContradicted, Severity: model.SeverityCritical},
		},
	}

	_, problems := v.Validate(review)
	if len(problems) != 1 || !strings.Contains(problems[0], "claims[1]") {
		t.Errorf("expected one problem labelled claims[1], got %v", problems)
	}
}
