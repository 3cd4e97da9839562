package review

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rsharda/medreview/internal/model"
	"github.com/rsharda/medreview/internal/pubmed"
)

// Per-claim literature lookups: up to 5 articles from the last 10 years.
const (
	lookupMaxResults = 5
	lookupYears      = 10
)

// Searcher is the literature lookup contract the resolver depends on.
// Production wiring passes the query cache in front of the PubMed client;
// tests substitute a deterministic fake.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults, years int) ([]model.Article, error)
}

// Resolver finalizes the evidentiary status of claims flagged for literature
// lookup. It only ever touches the NEEDS_PUBMED_CHECK subset: corroborating
// literature upgrades a claim to SUBSTANTIATED_PUBMED and steps its severity
// down one level; an empty result forces UNSUBSTANTIATED with CRITICAL
// severity. Backup-document matches are the extraction step's responsibility
// and pass through untouched.
type Resolver struct {
	searcher Searcher
	workers  int
}

// NewResolver creates a resolver issuing at most workers concurrent lookups
func NewResolver(searcher Searcher, workers int) *Resolver {
	if workers <= 0 {
		workers = 5
	}
	return &Resolver{searcher: searcher, workers: workers}
}

// Resolve runs the requested literature lookups concurrently and folds the
// results back into the review's claims in place. Claim order is preserved
// regardless of lookup completion order. If the context is cancelled,
// in-flight claims keep NEEDS_PUBMED_CHECK instead of blocking the report.
// The returned slice lists the lookups still outstanding afterward.
func (r *Resolver) Resolve(ctx context.Context, review *model.Review) []model.PubMedQuery {
	byID := make(map[string]int, len(review.Claims))
	for i, claim := range review.Claims {
		byID[claim.ID] = i
	}

	// Each claim is resolved at most once per report; the first query for a
	// claim wins.
	claimed := make(map[string]bool, len(review.PubMedQueriesNeeded))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, q := range review.PubMedQueriesNeeded {
		idx, ok := byID[q.ClaimID]
		if !ok || q.Query == "" || claimed[q.ClaimID] {
			continue
		}
		if review.Claims[idx].EvidenceStatus != model.StatusNeedsPubMedCheck {
			continue
		}
		claimed[q.ClaimID] = true

		query := q.Query
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // Abandoned; claim stays NEEDS_PUBMED_CHECK
			}

			articles, err := r.searcher.Search(gctx, query, lookupMaxResults, lookupYears)
			if err != nil || gctx.Err() != nil {
				return nil
			}

			// Tasks write to distinct indexes, so no locking is needed.
			r.apply(&review.Claims[idx], query, articles)
			return nil
		})
	}

	_ = g.Wait()

	var outstanding []model.PubMedQuery
	for _, q := range review.PubMedQueriesNeeded {
		if idx, ok := byID[q.ClaimID]; ok && review.Claims[idx].EvidenceStatus == model.StatusNeedsPubMedCheck {
			outstanding = append(outstanding, q)
		}
	}
	return outstanding
}

// apply finalizes one claim from its lookup result
func (r *Resolver) apply(claim *model.Claim, query string, articles []model.Article) {
	if len(articles) == 0 {
		// Absence of any supporting literature for a claim flagged for
		// verification is the worst outcome, overriding the original severity.
		claim.EvidenceStatus = model.StatusUnsubstantiated
		claim.Severity = model.SeverityCritical
		return
	}

	best := articles[0]
	bestScore := pubmed.Relevance(query, best)
	for _, a := range articles[1:] {
		if s := pubmed.Relevance(query, a); s > bestScore {
			best, bestScore = a, s
		}
	}

	claim.EvidenceStatus = model.StatusSubstantiatedPubMed
	claim.PubMedRef = &model.PubMedReference{
		PMID:       best.PMID,
		Title:      best.Title,
		Authors:    best.Authors,
		Journal:    best.Journal,
		Year:       best.Year,
		Confidence: bestScore,
	}
	// Corroboration here is algorithmic relevance, not a clinician's
	// judgment: it mitigates the flagged deficiency by one level, never
	// erases it outright.
	claim.Severity = claim.Severity.StepDown()
}
