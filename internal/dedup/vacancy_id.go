package dedup

import (
	"regexp"
)

var vacancyIDRegex = regexp.MustCompile(`(?:^|/vacancy/)(\d+)(?:[/?#]|$)`)

// ExtractVacancyID pulls the numeric id out of an hh link such as
// https://hh.kz/vacancy/123456?from=search. A bare id is returned as is, so
// extracting twice gives the same answer. A link without an id yields ok=false.
func ExtractVacancyID(link string) (string, bool) {
	m := vacancyIDRegex.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}
