package analysis

import (
	"regexp"
	"strings"
)

var levelRe = regexp.MustCompile(`(?i)(High|Medium|Low)`)

type section int

const (
	sectionNone section = iota
	sectionMissed
	sectionIssues
	sectionTests
)

// ParseFindings extracts structured findings from free-text model output.
// It tolerates arbitrary prose around the three expected sections and never
// fails: unparseable lines are skipped and the result may be empty.
//
// Expected item shape: "- Title: Description | Confidence: High". The level
// keyword is matched case-insensitively anywhere after the first pipe and
// defaults to Medium when absent.
func ParseFindings(output string) Response {
	resp := Response{
		MissedDiagnoses:  []MissedDiagnosis{},
		PotentialIssues:  []PotentialIssue{},
		RecommendedTests: []RecommendedTest{},
	}

	current := sectionNone
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.Contains(upper, "MISSED DIAGNOSES"):
			current = sectionMissed
			continue
		case strings.Contains(upper, "POTENTIAL ISSUES"):
			current = sectionIssues
			continue
		case strings.Contains(upper, "RECOMMENDED TESTS"):
			current = sectionTests
			continue
		}

		if !strings.HasPrefix(line, "-") || !strings.Contains(line, ":") {
			continue
		}
		title, description, level, ok := parseItem(line)
		if !ok {
			continue
		}

		switch current {
		case sectionMissed:
			resp.MissedDiagnoses = append(resp.MissedDiagnoses, MissedDiagnosis{
				Title: title, Description: description, Confidence: level,
			})
		case sectionIssues:
			resp.PotentialIssues = append(resp.PotentialIssues, PotentialIssue{
				Title: title, Description: description, Severity: level,
			})
		case sectionTests:
			resp.RecommendedTests = append(resp.RecommendedTests, RecommendedTest{
				Title: title, Description: description, Priority: level,
			})
		}
	}
	return resp
}

// parseItem splits a bullet into title, description and level. Only the
// first pipe and first colon are structural; later ones belong to the text.
func parseItem(line string) (title, description, level string, ok bool) {
	line = strings.TrimSpace(strings.TrimPrefix(line, "-"))

	head, tail, hasPipe := strings.Cut(line, "|")
	titleDesc := strings.TrimSpace(head)

	t, d, hasColon := strings.Cut(titleDesc, ":")
	if !hasColon {
		return "", "", "", false
	}
	title = strings.ReplaceAll(strings.TrimSpace(t), "**", "")
	description = strings.ReplaceAll(strings.TrimSpace(d), "**", "")

	level = "Medium"
	if hasPipe {
		// Only the segment directly after the first pipe carries the level.
		seg, _, _ := strings.Cut(tail, "|")
		if m := levelRe.FindString(seg); m != "" {
			level = strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
		}
	}
	return title, description, level, true
}
