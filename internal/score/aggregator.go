package score

import (
	"math"

	"github.com/rsharda/medreview/internal/model"
)

// Severity deductions, applied additively per flagged claim.
const (
	criticalPenalty = 15
	majorPenalty    = 8
	minorPenalty    = 3
)

// Aggregator computes the overall medical accuracy score from the final,
// post-resolution claim set. The pipeline always re-runs it after the
// resolver finishes; any provisional score from the extraction step is
// discarded.
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate returns a 0-100 accuracy score. An empty claim set scores 100:
// nothing to validate is a pass, not a failure. The base score is the
// substantiation rate (partial matches count half); severity deductions are
// then applied additively and the result clamped to [0,100], rounded half
// away from zero.
func (a *Aggregator) Aggregate(claims []model.Claim) int {
	if len(claims) == 0 {
		return 100
	}

	substantiated := 0
	partial := 0
	deductions := 0

	for _, claim := range claims {
		switch claim.EvidenceStatus {
		case model.StatusSubstantiatedBackup, model.StatusSubstantiatedPubMed:
			substantiated++
		case model.StatusPartiallySubstantiated:
			partial++
		}

		switch claim.Severity {
		case model.SeverityCritical:
			deductions += criticalPenalty
		case model.SeverityMajor:
			deductions += majorPenalty
		case model.SeverityMinor:
			deductions += minorPenalty
		}
	}

	base := (float64(substantiated) + 0.5*float64(partial)) / float64(len(claims)) * 100

	final := base - float64(deductions)
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}
	return int(math.Round(final))
}
