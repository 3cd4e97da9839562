package model

// Review is the structured output of the claim extraction step, after
// markdown-fence stripping and JSON decoding. Extraneous fields from the
// inference service are ignored; optional fields may be absent.
type Review struct {
	OverallScore int `json:"overall_score"` // Provisional; always recomputed after resolution

	Summary Summary `json:"summary"`
	Claims  []Claim `json:"claims"`

	PubMedQueriesNeeded     []PubMedQuery   `json:"pubmed_queries_needed,omitempty"`
	BackupDocumentsReviewed []string        `json:"backup_documents_reviewed,omitempty"`
	Recommendations         Recommendations `json:"recommendations"`
}

// Summary counts claims by evidence status
type Summary struct {
	TotalClaims             int `json:"total_claims"`
	SubstantiatedBackup     int `json:"substantiated_backup"`
	SubstantiatedPubMed     int `json:"substantiated_pubmed"`
	PartiallySubstantiated  int `json:"partially_substantiated"`
	NeedsPubMedCheck        int `json:"needs_pubmed_check"`
	Unsubstantiated         int `json:"unsubstantiated"`
	Contradicted            int `json:"contradicted"`
	Overstated              int `json:"overstated"`
}

// Recount rebuilds the summary from the claim list
func (s *Summary) Recount(claims []Claim) {
	*s = Summary{TotalClaims: len(claims)}
	for _, c := range claims {
		switch c.EvidenceStatus {
		case StatusSubstantiatedBackup:
			s.SubstantiatedBackup++
		case StatusSubstantiatedPubMed:
			s.SubstantiatedPubMed++
		case StatusPartiallySubstantiated:
			s.PartiallySubstantiated++
		case StatusNeedsPubMedCheck:
			s.NeedsPubMedCheck++
		case StatusUnsubstantiated:
			s.Unsubstantiated++
		case StatusContradicted:
			s.Contradicted++
		case StatusOverstated:
			s.Overstated++
		}
	}
}

// Recommendations aggregates remediation advice for the reviewer
type Recommendations struct {
	ImmediateActions []string `json:"immediate_actions"`
	CitationsNeeded  []string `json:"citations_needed"`
}

// Report is the final output of one review request. The pipeline produces it
// once and retains no reference afterward; all conclusions are advisory and
// require human sign-off.
type Report struct {
	OverallScore int     `json:"overall_score"` // 0-100 medical accuracy score
	Summary      Summary `json:"summary"`
	Claims       []Claim `json:"claims"`

	// PubMedQueriesNeeded lists lookups still outstanding after resolution
	// (e.g., abandoned on timeout).
	PubMedQueriesNeeded []PubMedQuery `json:"pubmed_queries_needed"`

	BackupDocumentsReviewed []string        `json:"backup_documents_reviewed,omitempty"`
	Recommendations         Recommendations `json:"recommendations"`

	// Error is set when the extraction output could not be parsed at all.
	// Callers must distinguish "no issues found" from "analysis failed".
	Error string `json:"error,omitempty"`
}

// Metadata describes the collateral under review; it is carried into the
// extraction prompt verbatim
type Metadata struct {
	BrandName      string `json:"brand_name,omitempty"`
	GenericName    string `json:"generic_name,omitempty"`
	TherapyArea    string `json:"therapy_area,omitempty"`
	Indications    string `json:"indications,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
}
