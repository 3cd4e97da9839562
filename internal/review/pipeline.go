package review

import (
	"context"
	"fmt"
	"os"

	"github.com/rsharda/medreview/internal/llm"
	"github.com/rsharda/medreview/internal/model"
	"github.com/rsharda/medreview/internal/score"
	"github.com/rsharda/medreview/internal/validate"
)

// Reviewer orchestrates one review request: claim extraction, structural
// validation, evidence resolution, and score aggregation. Every path
// terminates in a well-formed report; failure modes degrade, they never
// panic or propagate.
type Reviewer struct {
	provider   llm.Provider
	resolver   *Resolver
	validator  *validate.Validator
	aggregator *score.Aggregator
	verbose    bool
}

// NewReviewer creates a reviewer. The searcher is injected so tests can
// substitute a deterministic fake for the literature backend.
func NewReviewer(provider llm.Provider, searcher Searcher, cfg *model.Config) *Reviewer {
	return &Reviewer{
		provider:   provider,
		resolver:   NewResolver(searcher, cfg.Concurrency.ResolverWorkers),
		validator:  validate.NewValidator(),
		aggregator: score.NewAggregator(),
		verbose:    cfg.Output.Verbose,
	}
}

// Analyze reviews marketing collateral for medical accuracy against the
// supplied backup documents. Backup documents are read-only evidence; no
// state survives the request.
func (r *Reviewer) Analyze(ctx context.Context, collateral string, backupDocs []model.BackupDocument, meta model.Metadata) *model.Report {
	review, err := r.provider.Extract(ctx, llm.ExtractRequest{
		Collateral: collateral,
		BackupDocs: backupDocs,
		Metadata:   meta,
	})
	if err != nil {
		// Callers must distinguish "no issues found" from "analysis failed":
		// a failed extraction is an explicit error report, never a fabricated
		// clean result.
		return errorReport(err)
	}

	if ok, problems := r.validator.Validate(review); !ok {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "Warning: extraction output: %s\n", p)
		}
	}

	outstanding := r.resolver.Resolve(ctx, review)

	review.Summary.Recount(review.Claims)

	report := &model.Report{
		// The published score always reflects the final, literature-corroborated
		// claim set; the extraction step's provisional score is discarded.
		OverallScore:            r.aggregator.Aggregate(review.Claims),
		Summary:                 review.Summary,
		Claims:                  review.Claims,
		PubMedQueriesNeeded:     outstanding,
		BackupDocumentsReviewed: review.BackupDocumentsReviewed,
		Recommendations:         buildRecommendations(review),
	}

	if r.verbose {
		fmt.Fprintf(os.Stderr, "Review complete: %d claims, score %d, %d lookups outstanding\n",
			len(report.Claims), report.OverallScore, len(report.PubMedQueriesNeeded))
	}

	return report
}

// buildRecommendations keeps the extraction step's advice and supplements
// citation requests for claims that ended up without any supporting evidence
func buildRecommendations(review *model.Review) model.Recommendations {
	recs := model.Recommendations{
		ImmediateActions: review.Recommendations.ImmediateActions,
		CitationsNeeded:  review.Recommendations.CitationsNeeded,
	}
	if recs.ImmediateActions == nil {
		recs.ImmediateActions = []string{}
	}
	if recs.CitationsNeeded == nil {
		recs.CitationsNeeded = []string{}
	}

	for _, claim := range review.Claims {
		if claim.EvidenceStatus == model.StatusUnsubstantiated {
			recs.CitationsNeeded = append(recs.CitationsNeeded,
				fmt.Sprintf("%s: no supporting evidence found; add a citation or remove the claim", claim.ID))
		}
	}
	return recs
}

// errorReport builds the degraded report for a failed extraction
func errorReport(err error) *model.Report {
	return &model.Report{
		OverallScore:        0,
		Summary:             model.Summary{},
		Claims:              []model.Claim{},
		PubMedQueriesNeeded: []model.PubMedQuery{},
		Recommendations: model.Recommendations{
			ImmediateActions: []string{},
			CitationsNeeded:  []string{},
		},
		Error: err.Error(),
	}
}
