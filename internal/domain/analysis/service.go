package analysis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medicopilot/api/internal/platform/llm"
)

const systemPrompt = "You are a medical diagnostic assistant."

// Service runs diagnostic review over encounter data via the LLM.
type Service struct {
	llm   llm.Client
	model string
	log   zerolog.Logger
}

func NewService(client llm.Client, model string, log zerolog.Logger) *Service {
	return &Service{llm: client, model: model, log: log}
}

// Analyze sends the encounter to the model and parses its free-text reply
// into structured findings. Transport failures are returned; parse
// degradation is not, the response is simply sparser.
func (s *Service) Analyze(ctx context.Context, req Request) (*Response, error) {
	if req.PatientID == "" || req.Symptoms == "" || req.Diagnosis == "" {
		return nil, ErrMissingFields
	}
	if s.llm == nil {
		return nil, ErrNotConfigured
	}

	output, err := s.llm.Complete(ctx, llm.Request{
		Model:       s.model,
		System:      systemPrompt,
		Prompt:      BuildPrompt(req),
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis completion: %w", err)
	}

	resp := ParseFindings(output)
	total := len(resp.MissedDiagnoses) + len(resp.PotentialIssues) + len(resp.RecommendedTests)
	s.log.Debug().
		Str("patient_id", req.PatientID).
		Int("findings", total).
		Msg("encounter analysis parsed")
	if total == 0 {
		s.log.Warn().
			Str("patient_id", req.PatientID).
			Msg("analysis output yielded no structured findings")
	}
	return &resp, nil
}
