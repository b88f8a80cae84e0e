package analysis

import "errors"

// ErrMissingFields is returned when the request lacks any of the inputs
// the prompt cannot be built without.
var ErrMissingFields = errors.New("patient_id, symptoms and diagnosis are required")

// ErrNotConfigured is returned when no LLM client is available.
var ErrNotConfigured = errors.New("llm client not configured")

// Request carries the encounter data submitted for diagnostic review.
type Request struct {
	PatientID           string  `json:"patient_id"`
	Symptoms            string  `json:"symptoms"`
	Diagnosis           string  `json:"diagnosis"`
	VitalSigns          Vitals  `json:"vital_signs"`
	ExaminationFindings *string `json:"examination_findings,omitempty"`
	Medications         *string `json:"medications,omitempty"`
}

// Vitals mirrors the vitals captured on an encounter. All fields are
// optional; absent readings are omitted from the prompt.
type Vitals struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	BloodPressure    *string  `json:"blood_pressure,omitempty"`
	HeartRate        *float64 `json:"heart_rate,omitempty"`
	RespiratoryRate  *float64 `json:"respiratory_rate,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	Height           *float64 `json:"height,omitempty"`
}

// MissedDiagnosis is a diagnosis the model believes was overlooked.
type MissedDiagnosis struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Confidence  string `json:"confidence"`
}

// PotentialIssue flags a concern such as a medication interaction.
type PotentialIssue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// RecommendedTest suggests a follow-up investigation.
type RecommendedTest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Response is the structured review returned to the client. Field names
// keep the camelCase the frontend consumes.
type Response struct {
	MissedDiagnoses  []MissedDiagnosis `json:"missedDiagnoses"`
	PotentialIssues  []PotentialIssue  `json:"potentialIssues"`
	RecommendedTests []RecommendedTest `json:"recommendedTests"`
}
