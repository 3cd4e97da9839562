package model

// Claim represents a single scientific/medical assertion extracted from
// marketing collateral
type Claim struct {
	ID             string           `json:"id"`                         // Unique within a report (e.g., "CLM-001")
	ClaimText      string           `json:"claim_text"`                 // Verbatim claim text
	ClaimType      ClaimType        `json:"claim_type"`                 // One of the 8 claim kinds
	Location       string           `json:"location,omitempty"`         // Free-text locator (e.g., "Slide 5, bullet 2")
	EvidenceStatus EvidenceStatus   `json:"evidence_status"`            // Current corroboration state
	Severity       Severity         `json:"severity,omitempty"`         // Risk level of the deficiency, empty when substantiated
	BackupRef      *BackupReference `json:"backup_reference,omitempty"` // Set when a backup document supports the claim
	PubMedRef      *PubMedReference `json:"pubmed_reference,omitempty"` // Set when literature search supports the claim
	Issues         []Issue          `json:"issues,omitempty"`           // Flagged problems with remediation advice
}

// ClaimType categorizes the nature of the claim
type ClaimType string

const (
	ClaimEfficacy      ClaimType = "EFFICACY_CLAIM"       // Drug effectiveness statements
	ClaimSafety        ClaimType = "SAFETY_CLAIM"         // Safety profile statements
	ClaimComparative   ClaimType = "COMPARATIVE_CLAIM"    // Comparisons to other treatments
	ClaimMechanism     ClaimType = "MECHANISM_CLAIM"      // Mechanism-of-action statements
	ClaimStatistical   ClaimType = "STATISTICAL_CLAIM"    // P-values, confidence intervals, percentages
	ClaimDosing        ClaimType = "DOSING_CLAIM"         // Dosage statements
	ClaimPopulation    ClaimType = "POPULATION_CLAIM"     // Patient population statements
	ClaimOnsetDuration ClaimType = "ONSET_DURATION_CLAIM" // Time-related claims
)

// ClaimTypes lists all valid claim types
var ClaimTypes = []ClaimType{
	ClaimEfficacy, ClaimSafety, ClaimComparative, ClaimMechanism,
	ClaimStatistical, ClaimDosing, ClaimPopulation, ClaimOnsetDuration,
}

// Valid reports whether t is one of the enumerated claim types
func (t ClaimType) Valid() bool {
	for _, v := range ClaimTypes {
		if t == v {
			return true
		}
	}
	return false
}

// EvidenceStatus is the claim's corroboration state, ordered from strongest
// to weakest support
type EvidenceStatus string

const (
	StatusSubstantiatedBackup    EvidenceStatus = "SUBSTANTIATED_BACKUP"    // Directly supported by an uploaded backup document
	StatusSubstantiatedPubMed    EvidenceStatus = "SUBSTANTIATED_PUBMED"    // Verified via literature search
	StatusPartiallySubstantiated EvidenceStatus = "PARTIALLY_SUBSTANTIATED" // Some support but data does not fully match
	StatusNeedsPubMedCheck       EvidenceStatus = "NEEDS_PUBMED_CHECK"      // Not in backup docs, awaiting literature lookup
	StatusUnsubstantiated        EvidenceStatus = "UNSUBSTANTIATED"         // No evidence in backup docs or literature
	StatusContradicted           EvidenceStatus = "CONTRADICTED"            // Backup document shows different data
	StatusOverstated             EvidenceStatus = "OVERSTATED"              // Claim exaggerates the evidence
)

// EvidenceStatuses lists all valid evidence statuses
var EvidenceStatuses = []EvidenceStatus{
	StatusSubstantiatedBackup, StatusSubstantiatedPubMed,
	StatusPartiallySubstantiated, StatusNeedsPubMedCheck,
	StatusUnsubstantiated, StatusContradicted, StatusOverstated,
}

// Valid reports whether s is one of the enumerated statuses
func (s EvidenceStatus) Valid() bool {
	for _, v := range EvidenceStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Severity is the user-facing risk level of an unresolved evidentiary
// deficiency. The empty value means no deficiency.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityMajor    Severity = "MAJOR"
	SeverityMinor    Severity = "MINOR"
	SeverityNone     Severity = ""
)

// Valid reports whether s is CRITICAL, MAJOR, MINOR or none
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor, SeverityNone:
		return true
	}
	return false
}

// StepDown lowers the severity by exactly one level on the ordered scale
// CRITICAL → MAJOR → MINOR → none. None is the floor and steps to itself.
func (s Severity) StepDown() Severity {
	switch s {
	case SeverityCritical:
		return SeverityMajor
	case SeverityMajor:
		return SeverityMinor
	default:
		return SeverityNone
	}
}

// BackupReference links a claim to the backup document passage supporting it
type BackupReference struct {
	Document     string  `json:"document"`                // Backup document filename
	Page         int     `json:"page,omitempty"`          // Page number within the document
	MatchingText string  `json:"matching_text,omitempty"` // Excerpt that matches the claim
	Confidence   float64 `json:"confidence"`              // Match confidence in [0,1]
}

// PubMedReference links a claim to the literature article supporting it
type PubMedReference struct {
	PMID       string   `json:"pmid"`
	Title      string   `json:"title"`
	Authors    []string `json:"authors,omitempty"`
	Journal    string   `json:"journal,omitempty"`
	Year       string   `json:"year,omitempty"`
	Confidence float64  `json:"confidence"` // Relevance score of the matched article, in [0,1]
}

// Issue describes a flagged problem on a claim with remediation advice
type Issue struct {
	IssueType         string `json:"issue_type"`
	Recommendation    string `json:"recommendation,omitempty"`
	SuggestedRevision string `json:"suggested_revision,omitempty"`
}

// BackupDocument is caller-supplied source text used as primary evidence.
// The pipeline treats it as read-only and never persists it.
type BackupDocument struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// PubMedQuery is a literature lookup requested by the extraction step for a
// claim it could not match against backup documents
type PubMedQuery struct {
	ClaimID string `json:"claim_id"`
	Query   string `json:"query"`
}
