package pubmed

import (
	"strconv"
	"strings"
	"time"

	"github.com/rsharda/medreview/internal/model"
)

// nowFunc is the clock used for recency boosting (injectable for tests)
var nowFunc = time.Now

// Relevance scores how well an article matches a claim's search query,
// in [0,1]. Title matches are weighted higher than abstract matches as the
// stronger relevance signal, and publications within the last 5 years get a
// small boost. The score doubles as the confidence attached to a
// SUBSTANTIATED_PUBMED reference.
func Relevance(query string, article model.Article) float64 {
	queryTerms := termSet(query)
	if len(queryTerms) == 0 {
		return 0
	}

	titleOverlap := overlap(queryTerms, termSet(article.Title))
	abstractOverlap := overlap(queryTerms, termSet(article.Abstract))

	score := titleOverlap*0.6 + abstractOverlap*0.4

	currentYear := nowFunc().Year()
	pubYear, err := strconv.Atoi(article.Year)
	if err != nil {
		pubYear = currentYear
	}
	boost := float64(5-(currentYear-pubYear)) * 0.02
	if boost > 0 {
		score += boost
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// termSet tokenizes text into a lowercase term set
func termSet(text string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, t := range strings.Fields(strings.ToLower(text)) {
		terms[t] = struct{}{}
	}
	return terms
}

// overlap computes |query ∩ field| / |query|
func overlap(query, field map[string]struct{}) float64 {
	matched := 0
	for t := range query {
		if _, ok := field[t]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(query))
}
