// Package fields derives structured candidate attributes from raw resume
// text. Every extractor is a pure function over the text; the patterns are
// best-effort heuristics, not validators.
package fields

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
)

//go:embed skills.yaml
var skillsYAML []byte

var knownSkills = mustLoadVocabulary(skillsYAML)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	// Permissive on purpose: 9-16 digits/spaces/hyphens, optional leading +.
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9 \-]{7,14}[0-9]`)
)

const (
	nameScanLines = 8
	maxNameTokens = 5
)

func mustLoadVocabulary(raw []byte) []string {
	var doc struct {
		Skills []string `yaml:"skills"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("fields: parse skills vocabulary: %v", err))
	}
	if len(doc.Skills) == 0 {
		panic("fields: skills vocabulary is empty")
	}
	return doc.Skills
}

// Parse runs all extractors over the text.
func Parse(text string) domain.ParsedFields {
	return domain.ParsedFields{
		Name:   Name(text),
		Email:  Email(text),
		Phone:  Phone(text),
		Skills: Skills(text),
	}
}

// Email returns the first well-formed email address in the text, or "".
func Email(text string) string {
	return emailPattern.FindString(text)
}

// Phone returns the first phone-like digit sequence in the text, or "".
func Phone(text string) string {
	return phonePattern.FindString(text)
}

// Name scans the first 8 non-blank lines for a plausible display name:
// no resume/CV header words, no '@', no digits, at most 5 tokens.
func Name(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if seen > nameScanLines {
			break
		}
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "resume") ||
			strings.Contains(lower, "curriculum") ||
			strings.Contains(lower, "vitae") {
			continue
		}
		if strings.Contains(trimmed, "@") || strings.ContainsAny(trimmed, "0123456789") {
			continue
		}
		if len(strings.Fields(trimmed)) <= maxNameTokens {
			return trimmed
		}
	}
	return ""
}

// Skills returns the subset of the fixed vocabulary present in the text
// (case-insensitive substring match), deduplicated and sorted ascending.
func Skills(text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0)
	for _, skill := range knownSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)
	return matched
}
