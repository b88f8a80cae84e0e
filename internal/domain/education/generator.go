package education

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medicopilot/api/internal/domain/encounter"
	"github.com/medicopilot/api/internal/platform/llm"
)

// Generator produces the education document and clinical summary after a
// visit is saved. It satisfies the encounter service's content generator
// hook.
type Generator struct {
	repo  Repository
	llm   llm.Client
	model string
	log   zerolog.Logger
}

func NewGenerator(repo Repository, client llm.Client, model string, log zerolog.Logger) *Generator {
	return &Generator{repo: repo, llm: client, model: model, log: log}
}

// GenerateForVisit creates both documents. Each one fails independently and
// silently: saving the encounter already succeeded and generated content is
// best effort, so failures are logged and the matching ID stays nil.
func (g *Generator) GenerateForVisit(ctx context.Context, visit *encounter.Encounter, patient *encounter.PatientInfo) (educationID, summaryID *uuid.UUID) {
	if g.llm == nil {
		return nil, nil
	}
	educationID = g.generateEducation(ctx, visit, patient)
	summaryID = g.generateSummary(ctx, visit, patient)
	return educationID, summaryID
}

func (g *Generator) generateEducation(ctx context.Context, visit *encounter.Encounter, patient *encounter.PatientInfo) *uuid.UUID {
	content, err := g.llm.Complete(ctx, llm.Request{
		Model:       g.model,
		System:      educatorSystemPrompt,
		Prompt:      buildEducationPrompt(visit, patient),
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if err != nil {
		g.log.Warn().Err(err).
			Str("encounter_id", visit.ID.String()).
			Msg("patient education generation failed")
		return nil
	}

	description := educationDescription(visit.ChiefComplaint)
	edu := &PatientEducation{
		EncounterID: visit.ID,
		PatientID:   visit.PatientID,
		DoctorID:    visit.DoctorID,
		Title:       educationTitle(visit.Diagnosis),
		Description: &description,
		Content:     content,
		Status:      StatusPending,
	}
	if err := g.repo.InsertEducation(ctx, edu); err != nil {
		g.log.Error().Err(err).
			Str("encounter_id", visit.ID.String()).
			Msg("saving patient education failed")
		return nil
	}
	return &edu.ID
}

func (g *Generator) generateSummary(ctx context.Context, visit *encounter.Encounter, patient *encounter.PatientInfo) *uuid.UUID {
	previous, err := g.repo.LatestSummaryText(ctx, visit.PatientID)
	if err != nil {
		g.log.Warn().Err(err).
			Str("patient_id", visit.PatientID.String()).
			Msg("could not fetch previous summary")
		previous = ""
	}

	content, err := g.llm.Complete(ctx, llm.Request{
		Model:       g.model,
		System:      summarizerSystemPrompt,
		Prompt:      buildSummaryPrompt(visit, patient, previous),
		Temperature: 0.5,
		MaxTokens:   1500,
	})
	if err != nil {
		g.log.Warn().Err(err).
			Str("encounter_id", visit.ID.String()).
			Msg("patient summary generation failed")
		return nil
	}

	sections := ParseSummarySections(content)
	sum := &PatientSummary{
		EncounterID:      visit.ID,
		PatientID:        visit.PatientID,
		DoctorID:         visit.DoctorID,
		SummaryText:      sections.SummaryText,
		KeyFindings:      sections.KeyFindings,
		ImportantChanges: sections.ImportantChanges,
		FollowUpNotes:    sections.FollowUpNotes,
	}
	if err := g.repo.InsertSummary(ctx, sum); err != nil {
		g.log.Error().Err(err).
			Str("encounter_id", visit.ID.String()).
			Msg("saving patient summary failed")
		return nil
	}
	return &sum.ID
}
