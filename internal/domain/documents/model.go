package documents

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for lookups of unknown documents.
	ErrNotFound = errors.New("document not found")
	// ErrEncounterNotFound is returned when an upload references a missing
	// encounter.
	ErrEncounterNotFound = errors.New("encounter not found")
	// ErrInvalidType is returned for document types other than XRAY/REPORT.
	ErrInvalidType = errors.New("document_type must be XRAY or REPORT")
)

// Supported document types. XRAY covers imaging, REPORT covers lab notes.
const (
	TypeXray   = "XRAY"
	TypeReport = "REPORT"
)

// Document is an uploaded file attached to an encounter. FileURL points at
// external storage; ExtractedText holds OCR output when available.
type Document struct {
	ID            uuid.UUID `db:"id" json:"id"`
	EncounterID   uuid.UUID `db:"encounter_id" json:"encounter_id"`
	FileURL       string    `db:"file_url" json:"file_url"`
	DocumentType  string    `db:"document_type" json:"document_type"`
	ExtractedText *string   `db:"extracted_text" json:"extracted_text,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// UploadInput is the document registration payload.
type UploadInput struct {
	EncounterID   uuid.UUID `json:"encounter_id"`
	FileURL       string    `json:"file_url"`
	DocumentType  string    `json:"document_type"`
	ExtractedText *string   `json:"extracted_text,omitempty"`
}
