package pubmed

import (
	"math"
	"testing"
	"time"

	"github.com/rsharda/medreview/internal/model"
)

func fixedYear(t *testing.T, year int) {
	t.Helper()
	orig := nowFunc
	nowFunc = func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
	t.Cleanup(func() { nowFunc = orig })
}

func TestRelevance_Bounds(t *testing.T) {
	fixedYear(t, 2026)

	tests := []struct {
		name    string
		query   string
		article model.Article
	}{
		{"empty query", "", model.Article{Title: "anything"}},
		{"no overlap", "dapagliflozin renal outcomes", model.Article{Title: "unrelated work", Abstract: "nothing shared", Year: "2026"}},
		{"full overlap recent", "dapagliflozin outcomes", model.Article{Title: "dapagliflozin outcomes", Abstract: "dapagliflozin outcomes", Year: "2026"}},
		{"garbage year", "metformin", model.Article{Title: "metformin", Year: "not-a-year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relevance(tt.query, tt.article)
			if got < 0.0 || got > 1.0 {
				t.Errorf("Relevance() = %f, want within [0,1]", got)
			}
		})
	}
}

func TestRelevance_TitleWeightedHigher(t *testing.T) {
	fixedYear(t, 2026)

	query := "dapagliflozin hba1c reduction"
	old := "2010" // No recency boost

	titleMatch := Relevance(query, model.Article{Title: "dapagliflozin hba1c reduction", Year: old})
	abstractMatch := Relevance(query, model.Article{Abstract: "dapagliflozin hba1c reduction", Year: old})

	if math.Abs(titleMatch-0.6) > 1e-9 {
		t.Errorf("full title overlap = %f, want 0.6", titleMatch)
	}
	if math.Abs(abstractMatch-0.4) > 1e-9 {
		t.Errorf("full abstract overlap = %f, want 0.4", abstractMatch)
	}
}

func TestRelevance_RecencyBoost(t *testing.T) {
	fixedYear(t, 2026)

	query := "empagliflozin heart failure"
	title := "empagliflozin heart failure"

	recent := Relevance(query, model.Article{Title: title, Year: "2025"})
	old := Relevance(query, model.Article{Title: title, Year: "2015"})

	// 0.6 base; 1 year old gives a (5-1)*0.02 = 0.08 boost, 11 years gives none.
	if math.Abs(recent-0.68) > 1e-9 {
		t.Errorf("recent article = %f, want 0.68", recent)
	}
	if math.Abs(old-0.6) > 1e-9 {
		t.Errorf("old article = %f, want 0.6 (no boost)", old)
	}
}

func TestRelevance_PartialTitleOverlapScenario(t *testing.T) {
	fixedYear(t, 2026)

	// 3 of 4 query terms in the title, published 2 years ago:
	// 0.6*0.75 + 0.4*0 + 3*0.02 = 0.51
	query := "dapagliflozin hba1c reduction efficacy"
	article := model.Article{
		Title: "dapagliflozin hba1c reduction in type 2 diabetes",
		Year:  "2024",
	}

	got := Relevance(query, article)
	if math.Abs(got-0.51) > 1e-9 {
		t.Errorf("Relevance() = %f, want 0.51", got)
	}
}

func TestRelevance_ClampedAtOne(t *testing.T) {
	fixedYear(t, 2026)

	query := "semaglutide"
	article := model.Article{
		Title:    "semaglutide",
		Abstract: "semaglutide",
		Year:     "2026",
	}

	// 0.6 + 0.4 + 0.1 boost would exceed 1.0 without the clamp.
	if got := Relevance(query, article); got != 1.0 {
		t.Errorf("Relevance() = %f, want clamped 1.0", got)
	}
}
