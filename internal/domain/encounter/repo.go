package encounter

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create inserts the first visit of a new case. enc.VisitNumber must be 1.
	Create(ctx context.Context, enc *Encounter) error
	// CreateFollowUp inserts a follow-up visit, assigning the next
	// visit_number for enc.CaseID atomically. It fills in enc.VisitNumber and,
	// when enc.HistoryOfIllness is nil, inherits it from the latest visit.
	// Returns ErrCaseNotFound when the case has no prior visits and
	// ErrVisitConflict when a concurrent follow-up won the visit number.
	CreateFollowUp(ctx context.Context, enc *Encounter) error

	GetByID(ctx context.Context, id uuid.UUID) (*EncounterWithPatient, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]*EncounterWithPatient, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*EncounterWithPatient, error)
	ListAll(ctx context.Context, limit, offset int) ([]*EncounterWithPatient, error)
}
