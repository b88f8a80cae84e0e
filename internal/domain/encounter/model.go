package encounter

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrPatientNotFound is returned when a visit references a patient that
	// does not exist.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrCaseNotFound is returned when a follow-up references a case with no
	// prior visits.
	ErrCaseNotFound = errors.New("parent case not found")
	// ErrVisitConflict is returned when two concurrent follow-ups race for
	// the same visit number and the retry also loses.
	ErrVisitConflict = errors.New("visit number conflict")
	// ErrEncounterNotFound is returned for lookups of unknown encounters.
	ErrEncounterNotFound = errors.New("encounter not found")
)

// VitalSigns holds the optional measurements recorded during a visit.
type VitalSigns struct {
	Temperature      *float64 `db:"temperature" json:"temperature,omitempty"`
	BloodPressure    *string  `db:"blood_pressure" json:"blood_pressure,omitempty"`
	HeartRate        *int     `db:"heart_rate" json:"heart_rate,omitempty"`
	RespiratoryRate  *int     `db:"respiratory_rate" json:"respiratory_rate,omitempty"`
	OxygenSaturation *int     `db:"oxygen_saturation" json:"oxygen_saturation,omitempty"`
	Weight           *float64 `db:"weight" json:"weight,omitempty"`
	Height           *float64 `db:"height" json:"height,omitempty"`
}

// Encounter maps to the encounters table. Visits sharing a case_id form one
// clinical case; visit_number is contiguous ascending from 1 within a case.
type Encounter struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	PatientID        uuid.UUID  `db:"patient_id" json:"patient_id"`
	DoctorID         uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	CaseID           uuid.UUID  `db:"case_id" json:"case_id"`
	VisitNumber      int        `db:"visit_number" json:"visit_number"`
	ChiefComplaint   string     `db:"chief_complaint" json:"chief_complaint"`
	HistoryOfIllness *string    `db:"history_of_illness" json:"history_of_illness,omitempty"`
	VitalSigns
	PhysicalExam *string   `db:"physical_exam" json:"physical_exam,omitempty"`
	Diagnosis    *string   `db:"diagnosis" json:"diagnosis,omitempty"`
	Medications  *string   `db:"medications" json:"medications,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// EncounterWithPatient is an encounter enriched with the demographics the
// visit lists need.
type EncounterWithPatient struct {
	Encounter
	PatientName      string  `json:"patient_name"`
	PatientAge       *int    `json:"patient_age,omitempty"`
	PatientGender    *string `json:"patient_gender,omitempty"`
	PatientContact   *string `json:"patient_contact,omitempty"`
	PatientAllergies *string `json:"patient_allergies,omitempty"`
}

// PatientInfo is the slice of the patient record the encounter service needs
// for validation and content generation. The patient domain provides it via
// an adapter so the two packages stay decoupled.
type PatientInfo struct {
	ID        uuid.UUID
	Name      string
	Age       *int
	Gender    *string
	Allergies *string
}

// CreateOrContinueInput is the request payload for saving a visit. A nil
// CaseID starts a new case; a set CaseID continues an existing one.
type CreateOrContinueInput struct {
	PatientID        uuid.UUID  `json:"patient_id"`
	DoctorID         uuid.UUID  `json:"doctor_id"`
	CaseID           *uuid.UUID `json:"case_id,omitempty"`
	ChiefComplaint   string     `json:"chief_complaint"`
	HistoryOfIllness *string    `json:"history_of_illness,omitempty"`
	VitalSigns       VitalSigns `json:"vital_signs"`
	PhysicalExam     *string    `json:"physical_exam,omitempty"`
	Diagnosis        *string    `json:"diagnosis,omitempty"`
	Medications      *string    `json:"medications,omitempty"`
}

// SaveResult reports the identifiers resolved while saving a visit.
type SaveResult struct {
	EncounterID        uuid.UUID  `json:"encounter_id"`
	PatientID          uuid.UUID  `json:"patient_id"`
	CaseID             uuid.UUID  `json:"case_id"`
	VisitNumber        int        `json:"visit_number"`
	Message            string     `json:"message"`
	PatientEducationID *uuid.UUID `json:"patient_education_id,omitempty"`
	PatientSummaryID   *uuid.UUID `json:"patient_summary_id,omitempty"`
}
