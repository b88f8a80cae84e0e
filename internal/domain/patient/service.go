package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterPatient creates a patient and links the creating doctor.
func (s *Service) RegisterPatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.CreatedBy == uuid.Nil {
		return fmt.Errorf("created_by is required")
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 150) {
		return fmt.Errorf("age out of range: %d", *p.Age)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	if err := s.repo.LinkDoctor(ctx, p.CreatedBy, p.ID); err != nil {
		return fmt.Errorf("link doctor: %w", err)
	}
	return nil
}

// Search returns patients matching the query, or the most recent patients
// when the query is blank.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.Recent(ctx, limit)
	}
	return s.repo.Search(ctx, strings.ToLower(query), limit)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateAllergies(ctx context.Context, id uuid.UUID, allergies *string) error {
	return s.repo.UpdateAllergies(ctx, id, allergies)
}

func (s *Service) LinkDoctor(ctx context.Context, doctorID, patientID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, patientID); err != nil {
		return err
	}
	return s.repo.LinkDoctor(ctx, doctorID, patientID)
}

func (s *Service) ListForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Patient, error) {
	return s.repo.ListForDoctor(ctx, doctorID, limit, offset)
}
