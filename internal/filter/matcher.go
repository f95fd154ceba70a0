package filter

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	keywordRegex = buildKeywordRegex(Keywords)
	// \b is ASCII-only, so the Cyrillic alternatives carry no boundary
	excludeRegex = regexp.MustCompile(`(?i)(стажер|стажировк|\bintern(ship)?\b|\b1c\b|\b1с)`)
	genericRegex = regexp.MustCompile(`(?i)(\banalyst\b|\bengineer\b|аналитик|инженер)`)
)

func buildKeywordRegex(keywords []string) *regexp.Regexp {
	parts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		parts = append(parts, regexp.QuoteMeta(normalizeText(k)))
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(parts, "|") + `)`)
}

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		result = str
	}
	return strings.ToLower(result)
}

// MatchesKeywords is the offline relevance check. Internships are rejected,
// a title naming one of Keywords is accepted, and a generic title ("Analyst")
// is accepted only when the description names one of Keywords.
func MatchesKeywords(title, description string) bool {
	titleText := normalizeText(title)
	if excludeRegex.MatchString(titleText) {
		return false
	}
	if keywordRegex.MatchString(titleText) {
		return true
	}
	if !genericRegex.MatchString(titleText) {
		return false
	}
	return keywordRegex.MatchString(normalizeText(description))
}

// KeywordClassifier implements the classifier contract without an LLM.
type KeywordClassifier struct{}

func (KeywordClassifier) IsRelevant(_ context.Context, title, description string) (bool, error) {
	return MatchesKeywords(title, description), nil
}
