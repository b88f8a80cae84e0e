package education

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEducationNotFound is returned for lookups of unknown education docs.
	ErrEducationNotFound = errors.New("patient education not found")
	// ErrSummaryNotFound is returned for lookups of unknown summaries.
	ErrSummaryNotFound = errors.New("patient summary not found")
	// ErrNoUpdateFields is returned when an update request carries nothing.
	ErrNoUpdateFields = errors.New("no update data provided")
)

// Education document delivery states.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusViewed  = "viewed"
)

// PatientEducation is a generated education document plus the patient and
// encounter context the practice UI displays alongside it.
type PatientEducation struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	EncounterID uuid.UUID  `db:"encounter_id" json:"encounter_id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	DoctorID    uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	Content     string     `db:"content" json:"content"`
	Status      string     `db:"status" json:"status"`
	SentAt      *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	ViewedAt    *time.Time `db:"viewed_at" json:"viewed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`

	PatientName             *string `json:"patient_name,omitempty"`
	PatientAge              *int    `json:"patient_age,omitempty"`
	PatientGender           *string `json:"patient_gender,omitempty"`
	EncounterDiagnosis      *string `json:"encounter_diagnosis,omitempty"`
	EncounterChiefComplaint *string `json:"encounter_chief_complaint,omitempty"`
	VisitNumber             *int    `json:"visit_number,omitempty"`
}

// PatientSummary is a clinical summary of one visit.
type PatientSummary struct {
	ID               uuid.UUID `db:"id" json:"id"`
	EncounterID      uuid.UUID `db:"encounter_id" json:"encounter_id"`
	PatientID        uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID         uuid.UUID `db:"doctor_id" json:"doctor_id"`
	SummaryText      string    `db:"summary_text" json:"summary_text"`
	KeyFindings      *string   `db:"key_findings" json:"key_findings,omitempty"`
	ImportantChanges *string   `db:"important_changes" json:"important_changes,omitempty"`
	FollowUpNotes    *string   `db:"follow_up_notes" json:"follow_up_notes,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`

	PatientName        *string `json:"patient_name,omitempty"`
	EncounterDiagnosis *string `json:"encounter_diagnosis,omitempty"`
	VisitNumber        *int    `json:"visit_number,omitempty"`
}

// UpdateEducationInput carries a partial education update. Nil fields are
// untouched; a status of "sent" or "viewed" stamps the matching timestamp.
type UpdateEducationInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (in UpdateEducationInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Content == nil && in.Status == nil
}

// EducationList is a paginated doctor-scoped listing.
type EducationList struct {
	EducationList []*PatientEducation `json:"education_list"`
	Total         int                 `json:"total"`
}

// SummaryList is a paginated summary listing.
type SummaryList struct {
	Summaries []*PatientSummary `json:"summaries"`
	Total     int               `json:"total"`
}
