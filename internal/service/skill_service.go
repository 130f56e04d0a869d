package service

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/lshigami/skillgate/internal/model"
)

var acronymPattern = regexp.MustCompile(`^[A-Z]{2,4}$`)

// NormalizeSkills parses a comma-separated skill list. Segments that
// upper-case to 2-4 letters are kept as acronyms, everything else is
// title-cased. Order and repeats are preserved.
func NormalizeSkills(raw string) []string {
	skills := []string{}
	for _, segment := range strings.Split(raw, ",") {
		clean := strings.TrimSpace(segment)
		if clean == "" {
			continue
		}
		upper := strings.ToUpper(clean)
		if acronymPattern.MatchString(upper) {
			skills = append(skills, upper)
			continue
		}
		skills = append(skills, titleCase(clean))
	}
	return skills
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// skillPattern builds a case-insensitive matcher for one skill. The skill is
// quoted literally and framed by non-alphanumeric characters or the text
// edges, so "C++" and "C#" match as written. Inner whitespace matches any run
// of whitespace.
func skillPattern(skill string) *regexp.Regexp {
	words := strings.Fields(skill)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])` + strings.Join(quoted, `\s+`) + `(?:$|[^\p{L}\p{N}])`)
}

// MatchResume reports, per skill, whether the resume mentions it as a whole word.
func MatchResume(resumeText string, skills []string) map[string]bool {
	matches := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		matches[skill] = skillPattern(skill).MatchString(resumeText)
	}
	return matches
}

// Eligibility derives the eligibility report from a match map. With no skills
// the match percentage is 0 and the candidate is never eligible.
func Eligibility(matches map[string]bool, threshold int) model.EligibilityReport {
	report := model.EligibilityReport{
		TotalSkills:   len(matches),
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}
	for skill, found := range matches {
		if found {
			report.MatchedSkills = append(report.MatchedSkills, skill)
		} else {
			report.MissingSkills = append(report.MissingSkills, skill)
		}
	}
	sort.Strings(report.MatchedSkills)
	sort.Strings(report.MissingSkills)
	report.FoundSkills = len(report.MatchedSkills)

	if report.TotalSkills == 0 {
		return report
	}
	report.MatchPercent = roundTo(float64(report.FoundSkills)/float64(report.TotalSkills)*100, 2)
	report.Eligible = report.MatchPercent >= float64(threshold)
	return report
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// uniqueSkills drops repeated skills, keeping first appearance order.
func uniqueSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
