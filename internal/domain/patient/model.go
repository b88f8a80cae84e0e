package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("patient not found")

// Patient maps to the patients table. A patient is owned by the practice;
// doctors are linked through the doctor_patients table.
type Patient struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Age         *int      `db:"age" json:"age,omitempty"`
	Gender      *string   `db:"gender" json:"gender,omitempty"`
	ContactInfo *string   `db:"contact_info" json:"contact_info,omitempty"`
	Allergies   *string   `db:"allergies" json:"allergies,omitempty"`
	Email       *string   `db:"email" json:"email,omitempty"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SearchResult is the trimmed record returned by patient search.
type SearchResult struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Age         *int      `json:"age,omitempty"`
	Gender      *string   `json:"gender,omitempty"`
	ContactInfo *string   `json:"contact_info,omitempty"`
}

// UpdateAllergiesInput carries an allergy update; nil clears the field.
type UpdateAllergiesInput struct {
	Allergies *string `json:"allergies"`
}
