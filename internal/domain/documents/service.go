package documents

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upload registers a document against an existing encounter.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Document, error) {
	if in.FileURL == "" {
		return nil, fmt.Errorf("file_url is required")
	}
	if in.DocumentType != TypeXray && in.DocumentType != TypeReport {
		return nil, ErrInvalidType
	}

	exists, err := s.repo.EncounterExists(ctx, in.EncounterID)
	if err != nil {
		return nil, fmt.Errorf("check encounter: %w", err)
	}
	if !exists {
		return nil, ErrEncounterNotFound
	}

	d := &Document{
		EncounterID:   in.EncounterID,
		FileURL:       in.FileURL,
		DocumentType:  in.DocumentType,
		ExtractedText: in.ExtractedText,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return d, nil
}

func (s *Service) ListByEncounter(ctx context.Context, encounterID uuid.UUID) ([]*Document, error) {
	return s.repo.ListByEncounter(ctx, encounterID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
