package imaging

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medicopilot/api/internal/platform/llm"
)

const (
	severityHigh   = 3
	severityMedium = 2
	severityLow    = 1

	maxSummaryFindings = 5
	redFlagMarker      = "\U0001F6A8 "

	noFindingsSummary = "No significant findings detected across all specialties."
)

// Service fans one image out to three specialist reviews and aggregates
// the result.
type Service struct {
	llm   llm.Client
	model string
	log   zerolog.Logger
}

func NewService(client llm.Client, model string, log zerolog.Logger) *Service {
	return &Service{llm: client, model: model, log: log}
}

// Analyze runs all specialist reads concurrently. A failed specialist call
// degrades to an empty analysis for that slot; the response always carries
// one entry per specialist, in fixed order.
func (s *Service) Analyze(ctx context.Context, req Request) (*Response, error) {
	if s.llm == nil {
		return nil, ErrNotConfigured
	}

	imageURL, err := toDataURL(req.ImageBase64)
	if err != nil {
		return nil, err
	}

	analyses := make([]SpecialistAnalysis, len(Specialists))
	var wg sync.WaitGroup
	for i, specialist := range Specialists {
		wg.Add(1)
		go func(i int, specialist string) {
			defer wg.Done()
			analyses[i] = s.consult(ctx, specialist, imageURL, req)
		}(i, specialist)
	}
	wg.Wait()

	primary := primarySpecialist(analyses)
	return &Response{
		Analyses:          analyses,
		PrimarySpecialist: primary,
		OverallSummary:    summarize(analyses),
	}, nil
}

func (s *Service) consult(ctx context.Context, specialist, imageURL string, req Request) SpecialistAnalysis {
	prompt := BuildSpecialistPrompt(specialist, req.ImageType, req.BodyRegion, req.PatientContext)
	output, err := s.llm.CompleteVision(ctx, llm.Request{
		Model:       s.model,
		Prompt:      prompt,
		Temperature: 0.1,
		MaxTokens:   2048,
	}, imageURL)
	if err != nil {
		s.log.Warn().Err(err).Str("specialist", specialist).Msg("specialist consultation failed")
		return SpecialistAnalysis{
			Specialist:         specialist,
			HasFindings:        false,
			Findings:           []Finding{},
			OverlookedWarnings: []string{},
			RecommendedActions: []string{},
		}
	}
	analysis := ParseSpecialistResponse(output, specialist)
	s.log.Debug().
		Str("specialist", specialist).
		Bool("has_findings", analysis.HasFindings).
		Int("findings", len(analysis.Findings)).
		Msg("specialist consultation parsed")
	return analysis
}

// toDataURL validates the base64 payload and re-encodes it as a data URL.
// PNGs are sniffed by their base64 signature prefix; everything else is
// treated as JPEG.
func toDataURL(imageBase64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	mimeType := "image/jpeg"
	if strings.HasPrefix(imageBase64, "iVBORw") {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

func severityScore(severity string) int {
	switch severity {
	case "High":
		return severityHigh
	case "Medium":
		return severityMedium
	default:
		return severityLow
	}
}

// primarySpecialist picks the specialist whose findings carry the highest
// total severity score. Ties keep the earlier specialist; a zero score
// means no primary.
func primarySpecialist(analyses []SpecialistAnalysis) *string {
	var primary *string
	maxScore := 0
	for i := range analyses {
		if !analyses[i].HasFindings {
			continue
		}
		score := 0
		for _, f := range analyses[i].Findings {
			score += severityScore(f.Severity)
		}
		if score > maxScore {
			maxScore = score
			primary = &analyses[i].Specialist
		}
	}
	return primary
}

func summarize(analyses []SpecialistAnalysis) string {
	var entries []string
	for _, a := range analyses {
		if !a.HasFindings {
			continue
		}
		for _, f := range a.Findings {
			entry := a.Specialist + ": " + f.Title
			if f.IsRedFlag {
				entry = redFlagMarker + entry
			}
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return noFindingsSummary
	}
	shown := entries
	if len(shown) > maxSummaryFindings {
		shown = shown[:maxSummaryFindings]
	}
	summary := "Key findings: " + strings.Join(shown, "; ")
	if extra := len(entries) - maxSummaryFindings; extra > 0 {
		summary += fmt.Sprintf(" (+%d more)", extra)
	}
	return summary
}
