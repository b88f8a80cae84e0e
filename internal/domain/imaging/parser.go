package imaging

import (
	"encoding/json"
	"strings"
)

type rawFinding struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Severity    *string `json:"severity"`
	IsRedFlag   *bool   `json:"is_red_flag"`
}

type rawAnalysis struct {
	HasFindings        *bool        `json:"has_findings"`
	Findings           []rawFinding `json:"findings"`
	OverlookedWarnings []string     `json:"overlooked_warnings"`
	RecommendedActions []string     `json:"recommended_actions"`
}

// ParseSpecialistResponse extracts the JSON object from a specialist reply.
// Models wrap their JSON in prose or markdown fences, so the span from the
// first "{" to the last "}" is decoded rather than the raw text. Any decode
// failure degrades to an empty analysis; it never returns an error.
func ParseSpecialistResponse(responseText, specialist string) SpecialistAnalysis {
	empty := SpecialistAnalysis{
		Specialist:         specialist,
		HasFindings:        false,
		Findings:           []Finding{},
		OverlookedWarnings: []string{},
		RecommendedActions: []string{},
	}

	payload := responseText
	if start := strings.Index(responseText, "{"); start >= 0 {
		if end := strings.LastIndex(responseText, "}"); end > start {
			payload = responseText[start : end+1]
		}
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return empty
	}

	findings := make([]Finding, 0, len(raw.Findings))
	for _, f := range raw.Findings {
		findings = append(findings, Finding{
			Title:       stringOr(f.Title, "Unknown"),
			Description: stringOr(f.Description, ""),
			Severity:    stringOr(f.Severity, "Medium"),
			IsRedFlag:   f.IsRedFlag != nil && *f.IsRedFlag,
		})
	}

	hasFindings := len(findings) > 0
	if raw.HasFindings != nil {
		hasFindings = *raw.HasFindings
	}

	warnings := raw.OverlookedWarnings
	if warnings == nil {
		warnings = []string{}
	}
	actions := raw.RecommendedActions
	if actions == nil {
		actions = []string{}
	}

	return SpecialistAnalysis{
		Specialist:         specialist,
		HasFindings:        hasFindings,
		Findings:           findings,
		OverlookedWarnings: warnings,
		RecommendedActions: actions,
	}
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
