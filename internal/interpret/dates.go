// README: Travel-date extraction from natural language.
package interpret

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numericDatePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
	namedDatePattern   = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)
)

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseTravelDate extracts a travel date from the query relative to now.
// Supports relative phrases ("tomorrow", "next week") and explicit dates
// ("15/12/2026", "15th december"). Returns the zero time when nothing
// parses; the caller treats that as "flexible".
func ParseTravelDate(query string, now time.Time) time.Time {
	lower := strings.ToLower(query)

	switch {
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1)
	case strings.Contains(lower, "today"):
		return now
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7)
	}

	if m := numericDatePattern.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if t, ok := buildDate(year, month, day); ok {
			return t
		}
	}

	if m := namedDatePattern.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthAbbrev[m[2]]
		if t, ok := buildDate(now.Year(), int(month), day); ok {
			return t
		}
	}

	return time.Time{}
}

func buildDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject normalized overflow like 31 Feb.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
