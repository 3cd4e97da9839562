package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rsharda/medreview/internal/model"
)

// StripFences removes a surrounding markdown code fence from model output.
// Inference services routinely wrap JSON in ```json blocks despite being told
// not to; this is the defined parsing pre-step before decoding.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeReview parses raw model output into a Review. Extraneous fields are
// ignored; missing optional fields stay at their zero values. Invalid JSON is
// a serialization failure the caller surfaces as an explicit error report.
func DecodeReview(raw string) (*model.Review, error) {
	var review model.Review
	if err := json.Unmarshal([]byte(StripFences(raw)), &review); err != nil {
		return nil, fmt.Errorf("decode extraction output: %w", err)
	}
	return &review, nil
}
