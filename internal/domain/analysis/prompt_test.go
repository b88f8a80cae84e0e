package analysis

import (
	"strings"
	"testing"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestFormatVitalsUnitsAndOrder(t *testing.T) {
	v := Vitals{
		Temperature:      f64Ptr(101.2),
		BloodPressure:    strPtr("130/85"),
		HeartRate:        f64Ptr(92),
		OxygenSaturation: f64Ptr(97),
		Weight:           f64Ptr(70.5),
	}
	got := formatVitals(v)
	want := "Temperature: 101.2°F, Blood Pressure: 130/85, Heart Rate: 92 bpm, O2 Saturation: 97%, Weight: 70.5 kg"
	if got != want {
		t.Errorf("formatVitals:\n got  %q\n want %q", got, want)
	}
}

func TestFormatVitalsEmpty(t *testing.T) {
	if got := formatVitals(Vitals{}); got != "Not provided" {
		t.Errorf("formatVitals(empty) = %q", got)
	}
}

func TestBuildPromptPlaceholders(t *testing.T) {
	req := Request{
		PatientID: "p-123",
		Symptoms:  "fever, cough",
		Diagnosis: "URI",
	}
	p := BuildPrompt(req)

	for _, want := range []string{
		"Patient ID: p-123",
		"Symptoms: fever, cough",
		"Current Diagnosis: URI",
		"Vital Signs: Not provided",
		"Physical Examination: Not provided",
		"Current Medications: Not provided",
		"MISSED DIAGNOSES:",
		"POTENTIAL ISSUES:",
		"RECOMMENDED TESTS:",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptIncludesProvidedFields(t *testing.T) {
	req := Request{
		PatientID:           "p-9",
		Symptoms:            "headache",
		Diagnosis:           "migraine",
		ExaminationFindings: strPtr("photophobia noted"),
		Medications:         strPtr("sumatriptan"),
	}
	p := BuildPrompt(req)
	if !strings.Contains(p, "Physical Examination: photophobia noted") {
		t.Error("examination findings not included")
	}
	if !strings.Contains(p, "Current Medications: sumatriptan") {
		t.Error("medications not included")
	}
}
