package validate

import (
	"fmt"

	"github.com/rsharda/medreview/internal/model"
)

// Validator enforces structural invariants on extraction output before the
// resolver and aggregator trust it. Validation is pure: a failure is a
// diagnostic signal for the caller to log, never a raised error. The
// extraction step issues from a non-deterministic text-generation process
// and the pipeline tolerates malformed output.
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the review against the closed enumerations and required
// fields. It returns whether the review is structurally sound plus one
// message per violated invariant.
func (v *Validator) Validate(review *model.Review) (bool, []string) {
	var problems []string

	if review.OverallScore < 0 || review.OverallScore > 100 {
		problems = append(problems, fmt.Sprintf("overall_score %d out of range [0,100]", review.OverallScore))
	}

	for i, claim := range review.Claims {
		label := claim.ID
		if label == "" {
			label = fmt.Sprintf("claims[%d]", i)
			problems = append(problems, fmt.Sprintf("%s: missing id", label))
		}
		if claim.ClaimText == "" {
			problems = append(problems, fmt.Sprintf("%s: missing claim_text", label))
		}
		if !claim.ClaimType.Valid() {
			problems = append(problems, fmt.Sprintf("%s: invalid claim_type %q", label, claim.ClaimType))
		}
		if !claim.EvidenceStatus.Valid() {
			problems = append(problems, fmt.Sprintf("%s: invalid evidence_status %q", label, claim.EvidenceStatus))
		}
		if !claim.Severity.Valid() {
			problems = append(problems, fmt.Sprintf("%s: invalid severity %q", label, claim.Severity))
		}
	}

	return len(problems) == 0, problems
}
