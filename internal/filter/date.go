package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dottedDateRegex = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})[./](\d{4})`)
)

// ParseDate reads the cleaner's published_date_dt column. Anything it cannot
// read yields ok=false, the same as pandas' errors="coerce".
func ParseDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" || dateStr == "NaT" || dateStr == "nan" {
		return time.Time{}, false
	}

	//case 1: ISO "2025-04-23", "2025-04-23 00:00:00" or "2025-04-23T..."
	if isoDateRegex.MatchString(dateStr) {
		d, err := time.ParseInLocation("2006-01-02", dateStr[:10], time.Local)
		if err == nil {
			return d, true
		}
		return time.Time{}, false
	}

	//case 2: dd.mm.yyyy or dd/mm/yyyy
	if m := dottedDateRegex.FindStringSubmatch(dateStr); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		// reject 31.02 style overflow
		if d.Day() != day {
			return time.Time{}, false
		}
		return d, true
	}

	return time.Time{}, false
}

// SameDay compares calendar dates, ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
