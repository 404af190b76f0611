package document

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// displayLayout is the DD/MM/YY format every date is rendered in,
// independent of how the input was encoded.
const displayLayout = "02/01/06"

var (
	reDotted  = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	reISODate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reSlashed = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// FormatDate normalises a date string to DD/MM/YY. Accepted inputs are
// DD.MM.YYYY, YYYY-MM-DD and DD/MM/YYYY, plus RFC3339 timestamps as a
// fallback. Unparseable input is returned verbatim so a cosmetic field can
// never block document generation.
func FormatDate(input string) string {
	t, ok := parseDate(input)
	if !ok {
		return input
	}
	return t.Format(displayLayout)
}

func parseDate(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}
	if m := reDotted.FindStringSubmatch(s); m != nil {
		return buildDate(m[3], m[2], m[1])
	}
	if m := reISODate.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := reSlashed.FindStringSubmatch(s); m != nil {
		return buildDate(m[3], m[2], m[1])
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func buildDate(year, month, day string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflowing days, so 31.02 would silently
	// become 03.03. Treat that as unparseable instead.
	if t.Day() != d || t.Month() != time.Month(m) {
		return time.Time{}, false
	}
	return t, true
}

// ValidUntilDate computes the validity end of an offer: now plus validDays.
// An absent or non-numeric validDays defaults to one day.
func ValidUntilDate(validDays string, now time.Time) time.Time {
	days, err := strconv.Atoi(strings.TrimSpace(validDays))
	if err != nil {
		days = 1
	}
	return now.AddDate(0, 0, days)
}
