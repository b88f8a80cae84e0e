package education

import "strings"

const summaryFallbackLen = 500

// SummarySections holds the four parts of a generated clinical summary.
// SummaryText is always populated; the rest are nil when the model omitted
// the section or left it empty.
type SummarySections struct {
	SummaryText      string
	KeyFindings      *string
	ImportantChanges *string
	FollowUpNotes    *string
}

// ParseSummarySections splits model output on the four expected section
// headers. Header matching is a case-insensitive substring test, so both
// "SUMMARY_TEXT:" and "**Overall Summary**" open the summary section. Lines
// before the first header are dropped. If no summary text was captured the
// leading 500 characters of the raw output stand in for it.
func ParseSummarySections(content string) SummarySections {
	var summary, findings, changes, followup strings.Builder

	current := (*strings.Builder)(nil)
	for _, line := range strings.Split(content, "\n") {
		upper := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.Contains(upper, "SUMMARY_TEXT") ||
			strings.Contains(upper, "SUMMARY:") ||
			strings.Contains(upper, "OVERALL SUMMARY"):
			current = &summary
			continue
		case strings.Contains(upper, "KEY_FINDINGS") || strings.Contains(upper, "KEY FINDINGS"):
			current = &findings
			continue
		case strings.Contains(upper, "IMPORTANT_CHANGES") || strings.Contains(upper, "IMPORTANT CHANGES"):
			current = &changes
			continue
		case strings.Contains(upper, "FOLLOW_UP") || strings.Contains(upper, "FOLLOW UP"):
			current = &followup
			continue
		}
		if current != nil {
			current.WriteString(line)
			current.WriteString("\n")
		}
	}

	text := strings.TrimSpace(summary.String())
	if text == "" {
		// Degraded output: keep something usable rather than failing.
		runes := []rune(content)
		if len(runes) > summaryFallbackLen {
			runes = runes[:summaryFallbackLen]
		}
		text = strings.TrimSpace(string(runes))
	}

	return SummarySections{
		SummaryText:      text,
		KeyFindings:      nilIfEmpty(findings.String()),
		ImportantChanges: nilIfEmpty(changes.String()),
		FollowUpNotes:    nilIfEmpty(followup.String()),
	}
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
