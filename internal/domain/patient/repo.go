package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	UpdateAllergies(ctx context.Context, id uuid.UUID, allergies *string) error
	// Search matches name first, then contact info, case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]*SearchResult, error)
	// Recent returns the most recently created patients.
	Recent(ctx context.Context, limit int) ([]*SearchResult, error)
	// LinkDoctor attaches a doctor to a patient; linking twice is a no-op.
	LinkDoctor(ctx context.Context, doctorID, patientID uuid.UUID) error
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Patient, error)
}
