package education

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists education documents and visit summaries. Read methods
// return records enriched with patient and encounter context.
type Repository interface {
	InsertEducation(ctx context.Context, e *PatientEducation) error
	GetEducationByID(ctx context.Context, id uuid.UUID) (*PatientEducation, error)
	GetEducationByEncounter(ctx context.Context, encounterID uuid.UUID) (*PatientEducation, error)
	// ListEducationForDoctor filters by status when status is non-empty and
	// returns the page plus the unpaged total.
	ListEducationForDoctor(ctx context.Context, doctorID uuid.UUID, status string, limit, offset int) ([]*PatientEducation, int, error)
	UpdateEducation(ctx context.Context, id uuid.UUID, in UpdateEducationInput) error
	MarkEducationSent(ctx context.Context, id uuid.UUID) error

	InsertSummary(ctx context.Context, s *PatientSummary) error
	GetSummaryByEncounter(ctx context.Context, encounterID uuid.UUID) (*PatientSummary, error)
	ListSummariesForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*PatientSummary, int, error)
	ListSummariesForPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*PatientSummary, error)
	// LatestSummaryText returns the newest summary text for a patient, or
	// "" when the patient has none.
	LatestSummaryText(ctx context.Context, patientID uuid.UUID) (string, error)
}
