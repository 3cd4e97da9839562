package llm

import (
	"context"

	"github.com/rsharda/medreview/internal/model"
)

// Provider defines the interface for claim extraction backends. The inference
// service's internal reasoning is opaque; the pipeline trusts nothing beyond
// the validated output contract.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Extract analyzes marketing collateral against backup documents and
	// returns the structured claim review
	Extract(ctx context.Context, req ExtractRequest) (*model.Review, error)
}

// ExtractRequest contains the input for claim extraction
type ExtractRequest struct {
	// Collateral is the full text of the marketing material under review
	Collateral string

	// BackupDocs are the caller-supplied evidence documents. Claims found
	// here are substantiated at the primary tier; everything else is flagged
	// for literature lookup.
	BackupDocs []model.BackupDocument

	// Metadata describes the product and audience for the prompt
	Metadata model.Metadata

	// Model overrides the configured model name (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}
