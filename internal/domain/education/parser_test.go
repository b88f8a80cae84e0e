package education

import (
	"strings"
	"testing"
)

func TestParseSummarySectionsFullOutput(t *testing.T) {
	content := `Here is the clinical summary you requested.

SUMMARY_TEXT:
Patient presented with worsening cough. Diagnosed with acute bronchitis.

KEY_FINDINGS:
- Productive cough for 5 days
- Mild wheezing on auscultation

IMPORTANT_CHANGES:
- Started on bronchodilator

FOLLOW_UP_NOTES:
Return in one week if symptoms persist.`

	s := ParseSummarySections(content)

	if !strings.Contains(s.SummaryText, "worsening cough") {
		t.Errorf("summary text = %q", s.SummaryText)
	}
	if strings.Contains(s.SummaryText, "clinical summary you requested") {
		t.Error("pre-header prose must not leak into summary text")
	}
	if s.KeyFindings == nil || !strings.Contains(*s.KeyFindings, "Productive cough") {
		t.Errorf("key findings = %v", s.KeyFindings)
	}
	if s.ImportantChanges == nil || !strings.Contains(*s.ImportantChanges, "bronchodilator") {
		t.Errorf("important changes = %v", s.ImportantChanges)
	}
	if s.FollowUpNotes == nil || !strings.Contains(*s.FollowUpNotes, "Return in one week") {
		t.Errorf("follow up = %v", s.FollowUpNotes)
	}
}

func TestParseSummarySectionsHeaderVariants(t *testing.T) {
	content := `**Overall Summary**
Stable visit, no acute issues.

Key Findings:
- Vitals within normal limits

Follow up:
None required.`

	s := ParseSummarySections(content)
	if !strings.Contains(s.SummaryText, "Stable visit") {
		t.Errorf("summary text = %q", s.SummaryText)
	}
	if s.KeyFindings == nil {
		t.Fatal("spaced Key Findings header not matched")
	}
	if s.FollowUpNotes == nil {
		t.Fatal("spaced Follow up header not matched")
	}
	if s.ImportantChanges != nil {
		t.Errorf("missing section must be nil, got %q", *s.ImportantChanges)
	}
}

func TestParseSummarySectionsFallbackToLeadingContent(t *testing.T) {
	content := strings.Repeat("unstructured prose with no headers. ", 30)

	s := ParseSummarySections(content)
	if s.SummaryText == "" {
		t.Fatal("fallback summary must not be empty")
	}
	if len([]rune(s.SummaryText)) > summaryFallbackLen {
		t.Errorf("fallback length = %d, want <= %d", len([]rune(s.SummaryText)), summaryFallbackLen)
	}
	if s.KeyFindings != nil || s.ImportantChanges != nil || s.FollowUpNotes != nil {
		t.Error("no sections expected for unstructured output")
	}
}

func TestParseSummarySectionsEmptySectionsAreNil(t *testing.T) {
	content := `SUMMARY_TEXT:
Routine check-up.

KEY_FINDINGS:

IMPORTANT_CHANGES:
`

	s := ParseSummarySections(content)
	if s.SummaryText != "Routine check-up." {
		t.Errorf("summary text = %q", s.SummaryText)
	}
	if s.KeyFindings != nil {
		t.Errorf("empty key findings must be nil, got %q", *s.KeyFindings)
	}
	if s.ImportantChanges != nil {
		t.Errorf("empty important changes must be nil, got %q", *s.ImportantChanges)
	}
}
