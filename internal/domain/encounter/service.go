package encounter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PatientSource resolves the patient record a visit references. The patient
// domain provides an adapter (see cmd/medicopilot-server) which returns
// ErrPatientNotFound for a missing patient; any other error is treated as a
// lookup failure, not a missing record.
type PatientSource interface {
	Get(ctx context.Context, id uuid.UUID) (*PatientInfo, error)
}

// ContentGenerator produces the patient-facing education and summary
// records after a visit is saved. Generation is best-effort: failures are
// handled (and logged) by the implementation, never surfaced here.
type ContentGenerator interface {
	GenerateForVisit(ctx context.Context, visit *Encounter, patient *PatientInfo) (educationID, summaryID *uuid.UUID)
}

type Service struct {
	repo     Repository
	patients PatientSource
	gen      ContentGenerator
	log      zerolog.Logger
}

func NewService(repo Repository, patients PatientSource, log zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, log: log}
}

// SetContentGenerator attaches an optional post-save generator.
func (s *Service) SetContentGenerator(gen ContentGenerator) {
	s.gen = gen
}

// CreateOrContinue saves a visit. Without a case id it opens a new case with
// visit 1; with one it appends the next visit to that case, inheriting the
// history of illness from the latest prior visit when none is supplied.
func (s *Service) CreateOrContinue(ctx context.Context, input CreateOrContinueInput) (*SaveResult, error) {
	if input.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if input.DoctorID == uuid.Nil {
		return nil, fmt.Errorf("doctor_id is required")
	}
	if input.ChiefComplaint == "" {
		return nil, fmt.Errorf("chief_complaint is required")
	}

	patient, err := s.patients.Get(ctx, input.PatientID)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("resolve patient: %w", err)
	}

	enc := &Encounter{
		PatientID:        input.PatientID,
		DoctorID:         input.DoctorID,
		ChiefComplaint:   input.ChiefComplaint,
		HistoryOfIllness: input.HistoryOfIllness,
		VitalSigns:       input.VitalSigns,
		PhysicalExam:     input.PhysicalExam,
		Diagnosis:        input.Diagnosis,
		Medications:      input.Medications,
	}

	if input.CaseID == nil {
		enc.CaseID = uuid.New()
		enc.VisitNumber = 1
		if err := s.repo.Create(ctx, enc); err != nil {
			return nil, fmt.Errorf("create encounter: %w", err)
		}
	} else {
		enc.CaseID = *input.CaseID
		if err := s.createFollowUpWithRetry(ctx, enc, input.HistoryOfIllness); err != nil {
			return nil, err
		}
	}

	result := &SaveResult{
		EncounterID: enc.ID,
		PatientID:   enc.PatientID,
		CaseID:      enc.CaseID,
		VisitNumber: enc.VisitNumber,
		Message:     fmt.Sprintf("Encounter saved successfully (Visit #%d)", enc.VisitNumber),
	}

	if s.gen != nil {
		result.PatientEducationID, result.PatientSummaryID = s.gen.GenerateForVisit(ctx, enc, patient)
	}

	return result, nil
}

// createFollowUpWithRetry retries once on a visit-number collision; a second
// collision surfaces as ErrVisitConflict.
func (s *Service) createFollowUpWithRetry(ctx context.Context, enc *Encounter, suppliedHistory *string) error {
	err := s.repo.CreateFollowUp(ctx, enc)
	if errors.Is(err, ErrVisitConflict) {
		s.log.Warn().
			Str("case_id", enc.CaseID.String()).
			Int("visit_number", enc.VisitNumber).
			Msg("visit number collision, retrying with fresh read")
		enc.HistoryOfIllness = suppliedHistory
		err = s.repo.CreateFollowUp(ctx, enc)
	}
	if err != nil {
		if errors.Is(err, ErrCaseNotFound) || errors.Is(err, ErrVisitConflict) {
			return err
		}
		return fmt.Errorf("create follow-up: %w", err)
	}
	return nil
}

func (s *Service) GetEncounter(ctx context.Context, id uuid.UUID) (*EncounterWithPatient, error) {
	return s.repo.GetByID(ctx, id)
}

// CaseHistory returns every visit in a case ordered by visit number.
func (s *Service) CaseHistory(ctx context.Context, caseID uuid.UUID) ([]*EncounterWithPatient, error) {
	encs, err := s.repo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if len(encs) == 0 {
		return nil, ErrCaseNotFound
	}
	return encs, nil
}

func (s *Service) ListForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*EncounterWithPatient, error) {
	return s.repo.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]*EncounterWithPatient, error) {
	return s.repo.ListAll(ctx, limit, offset)
}
