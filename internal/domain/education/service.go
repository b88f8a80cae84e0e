package education

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes read and delivery operations over generated documents.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetEducation(ctx context.Context, id uuid.UUID) (*PatientEducation, error) {
	return s.repo.GetEducationByID(ctx, id)
}

func (s *Service) GetEducationByEncounter(ctx context.Context, encounterID uuid.UUID) (*PatientEducation, error) {
	return s.repo.GetEducationByEncounter(ctx, encounterID)
}

func (s *Service) ListEducationForDoctor(ctx context.Context, doctorID uuid.UUID, status string, limit, offset int) (*EducationList, error) {
	list, total, err := s.repo.ListEducationForDoctor(ctx, doctorID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*PatientEducation{}
	}
	return &EducationList{EducationList: list, Total: total}, nil
}

func (s *Service) UpdateEducation(ctx context.Context, id uuid.UUID, in UpdateEducationInput) error {
	if in.IsEmpty() {
		return ErrNoUpdateFields
	}
	return s.repo.UpdateEducation(ctx, id, in)
}

func (s *Service) SendEducation(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkEducationSent(ctx, id)
}

func (s *Service) GetSummaryByEncounter(ctx context.Context, encounterID uuid.UUID) (*PatientSummary, error) {
	return s.repo.GetSummaryByEncounter(ctx, encounterID)
}

func (s *Service) ListSummariesForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) (*SummaryList, error) {
	list, total, err := s.repo.ListSummariesForDoctor(ctx, doctorID, limit, offset)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*PatientSummary{}
	}
	return &SummaryList{Summaries: list, Total: total}, nil
}

func (s *Service) ListSummariesForPatient(ctx context.Context, patientID uuid.UUID, limit int) (*SummaryList, error) {
	list, err := s.repo.ListSummariesForPatient(ctx, patientID, limit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*PatientSummary{}
	}
	return &SummaryList{Summaries: list, Total: len(list)}, nil
}
