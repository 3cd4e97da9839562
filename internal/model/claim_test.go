package model

import "testing"

func TestSeverity_StepDown(t *testing.T) {
	tests := []struct {
		in   Severity
		want Severity
	}{
		{SeverityCritical, SeverityMajor},
		{SeverityMajor, SeverityMinor},
		{SeverityMinor, SeverityNone},
		{SeverityNone, SeverityNone},
	}

	for _, tt := range tests {
		if got := tt.in.StepDown(); got != tt.want {
			t.Errorf("StepDown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeverity_StepDownIsExactlyOneLevel(t *testing.T) {
	// Two steps from CRITICAL must land on MINOR, never skip to none.
	if got := SeverityCritical.StepDown().StepDown(); got != SeverityMinor {
		t.Errorf("double step from CRITICAL = %q, want MINOR", got)
	}
}

func TestClaimType_Valid(t *testing.T) {
	for _, ct := range ClaimTypes {
		if !ct.Valid() {
			t.Errorf("%s should be valid", ct)
		}
	}
	for _, ct := range []ClaimType{"", "EFFICACY", "efficacy_claim", "MARKETING_CLAIM"} {
		if ct.Valid() {
			t.Errorf("%q should be invalid", ct)
		}
	}
}

func TestEvidenceStatus_Valid(t *testing.T) {
	for _, s := range EvidenceStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []EvidenceStatus{"", "VERIFIED", "substantiated_backup"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []Severity{SeverityCritical, SeverityMajor, SeverityMinor, SeverityNone} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Severity("FATAL").Valid() {
		t.Error("FATAL should be invalid")
	}
}
