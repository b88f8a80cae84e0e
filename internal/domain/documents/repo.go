package documents

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	ListByEncounter(ctx context.Context, encounterID uuid.UUID) ([]*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// EncounterExists reports whether the encounter a document targets is
	// known.
	EncounterExists(ctx context.Context, encounterID uuid.UUID) (bool, error)
}
