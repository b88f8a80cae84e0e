package education

import (
	"fmt"

	"github.com/medicopilot/api/internal/domain/encounter"
)

const (
	educatorSystemPrompt   = "You are a compassionate medical educator creating patient-friendly educational materials."
	summarizerSystemPrompt = "You are a medical documentation specialist creating concise clinical summaries."
)

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func derefInt(n *int, fallback string) string {
	if n == nil {
		return fallback
	}
	return fmt.Sprintf("%d", *n)
}

func derefFloat(f *float64, fallback string) string {
	if f == nil {
		return fallback
	}
	return fmt.Sprintf("%g", *f)
}

// buildEducationPrompt asks for a patient-facing guide covering the
// condition, medications, care instructions and warning signs.
func buildEducationPrompt(visit *encounter.Encounter, patient *encounter.PatientInfo) string {
	return fmt.Sprintf(`You are a medical educator. Create a patient education document based on this encounter:

Patient Name: %s
Age: %s
Gender: %s
Allergies: %s

Chief Complaint: %s
Diagnosis: %s
Medications Prescribed: %s
Physical Exam Findings: %s

Generate a patient-friendly education document that includes:
1. An explanation of their condition in simple terms
2. What each prescribed medication is for and how to take it
3. Important care instructions and lifestyle recommendations
4. Warning signs that require immediate medical attention
5. Expected recovery timeline and follow-up recommendations

Format the content clearly with sections and bullet points where appropriate.
Write in a caring, reassuring tone that patients can easily understand.
`,
		patient.Name,
		derefInt(patient.Age, "N/A"),
		deref(patient.Gender, "N/A"),
		deref(patient.Allergies, "None reported"),
		visit.ChiefComplaint,
		deref(visit.Diagnosis, "N/A"),
		deref(visit.Medications, "None"),
		deref(visit.PhysicalExam, "N/A"),
	)
}

// buildSummaryPrompt asks for a structured clinical summary. When a previous
// summary exists it is threaded in so the model can call out changes.
func buildSummaryPrompt(visit *encounter.Encounter, patient *encounter.PatientInfo, previousSummary string) string {
	previousContext := ""
	if previousSummary != "" {
		previousContext = fmt.Sprintf("\nPrevious Patient Summary:\n%s\n\nNote any changes from the previous summary.", previousSummary)
	}

	return fmt.Sprintf(`You are a medical documentation specialist. Create a concise clinical summary for this patient encounter:

Patient Name: %s
Age: %s
Gender: %s
Known Allergies: %s

Visit Details:
- Chief Complaint: %s
- History of Illness: %s
- Diagnosis: %s
- Medications: %s
- Physical Exam: %s

Vital Signs:
- Temperature: %s°F
- Blood Pressure: %s
- Heart Rate: %s bpm
- Respiratory Rate: %s breaths/min
- O2 Saturation: %s%%
- Weight: %s kg
- Height: %s cm
%s

Generate a structured summary with:
1. SUMMARY_TEXT: A brief 2-3 sentence overall summary of the encounter
2. KEY_FINDINGS: Important clinical findings from this visit (bullet points)
3. IMPORTANT_CHANGES: Any significant changes in patient condition or treatment (bullet points)
4. FOLLOW_UP_NOTES: Recommended follow-up actions and monitoring requirements

Format each section with clear headers.
`,
		patient.Name,
		derefInt(patient.Age, "N/A"),
		deref(patient.Gender, "N/A"),
		deref(patient.Allergies, "None reported"),
		visit.ChiefComplaint,
		deref(visit.HistoryOfIllness, "N/A"),
		deref(visit.Diagnosis, "N/A"),
		deref(visit.Medications, "None"),
		deref(visit.PhysicalExam, "N/A"),
		derefFloat(visit.Temperature, "N/A"),
		deref(visit.BloodPressure, "N/A"),
		derefInt(visit.HeartRate, "N/A"),
		derefInt(visit.RespiratoryRate, "N/A"),
		derefInt(visit.OxygenSaturation, "N/A"),
		derefFloat(visit.Weight, "N/A"),
		derefFloat(visit.Height, "N/A"),
		previousContext,
	)
}

// educationTitle derives the document title from the visit diagnosis,
// truncated so overlong diagnoses do not blow out the title column.
func educationTitle(diagnosis *string) string {
	if diagnosis == nil || *diagnosis == "" {
		return "Your Health Care Guide"
	}
	d := *diagnosis
	if r := []rune(d); len(r) > 50 {
		d = string(r[:50])
	}
	return "Understanding Your Diagnosis: " + d
}

func educationDescription(chiefComplaint string) string {
	if chiefComplaint == "" {
		chiefComplaint = "your condition"
	}
	return "Educational material about your recent visit for " + chiefComplaint
}
