package analysis

import (
	"fmt"
	"strings"
)

const notProvided = "Not provided"

// formatVitals renders the recorded vitals as a comma-separated list with
// units, or "Not provided" when nothing was captured.
func formatVitals(v Vitals) string {
	var parts []string
	if v.Temperature != nil {
		parts = append(parts, fmt.Sprintf("Temperature: %g°F", *v.Temperature))
	}
	if v.BloodPressure != nil && *v.BloodPressure != "" {
		parts = append(parts, fmt.Sprintf("Blood Pressure: %s", *v.BloodPressure))
	}
	if v.HeartRate != nil {
		parts = append(parts, fmt.Sprintf("Heart Rate: %g bpm", *v.HeartRate))
	}
	if v.RespiratoryRate != nil {
		parts = append(parts, fmt.Sprintf("Respiratory Rate: %g breaths/min", *v.RespiratoryRate))
	}
	if v.OxygenSaturation != nil {
		parts = append(parts, fmt.Sprintf("O2 Saturation: %g%%", *v.OxygenSaturation))
	}
	if v.Weight != nil {
		parts = append(parts, fmt.Sprintf("Weight: %g kg", *v.Weight))
	}
	if v.Height != nil {
		parts = append(parts, fmt.Sprintf("Height: %g cm", *v.Height))
	}
	if len(parts) == 0 {
		return notProvided
	}
	return strings.Join(parts, ", ")
}

func orNotProvided(s *string) string {
	if s == nil || *s == "" {
		return notProvided
	}
	return *s
}

// BuildPrompt assembles the diagnostic review prompt. The output format it
// requests is the contract ParseFindings relies on.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(`You are a medical diagnostic assistant. Analyze this patient encounter:

Patient ID: %s
Symptoms: %s
Current Diagnosis: %s
Vital Signs: %s
Physical Examination: %s
Current Medications: %s

Provide your analysis in this format:

MISSED DIAGNOSES:
- [Diagnosis name]: [Description] | Confidence: [High/Medium/Low]

POTENTIAL ISSUES:
- [Issue name]: [Description] | Severity: [High/Medium/Low]
- Consider medication interactions and contraindications

RECOMMENDED TESTS:
- [Test name]: [Description] | Priority: [High/Medium/Low]

Analysis:`,
		req.PatientID,
		req.Symptoms,
		req.Diagnosis,
		formatVitals(req.VitalSigns),
		orNotProvided(req.ExaminationFindings),
		orNotProvided(req.Medications),
	)
}
