package imaging

import "errors"

// ErrNotConfigured is returned when no vision API key is available.
var ErrNotConfigured = errors.New("vision analysis is not configured")

// Request carries a base64-encoded medical image plus its context.
type Request struct {
	ImageBase64    string  `json:"image_base64"`
	ImageType      string  `json:"image_type"`
	BodyRegion     string  `json:"body_region"`
	PatientContext *string `json:"patient_context,omitempty"`
}

// Finding is a single observation from one specialist.
type Finding struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	IsRedFlag   bool   `json:"is_red_flag"`
}

// SpecialistAnalysis is one specialist's complete read of the image.
type SpecialistAnalysis struct {
	Specialist         string    `json:"specialist"`
	HasFindings        bool      `json:"has_findings"`
	Findings           []Finding `json:"findings"`
	OverlookedWarnings []string  `json:"overlooked_warnings"`
	RecommendedActions []string  `json:"recommended_actions"`
}

// Response aggregates all specialist reads. PrimarySpecialist is nil when
// no specialist reported findings.
type Response struct {
	Analyses          []SpecialistAnalysis `json:"analyses"`
	PrimarySpecialist *string              `json:"primary_specialist"`
	OverallSummary    string               `json:"overall_summary"`
}
