package normalize

import (
	"regexp"
	"strings"
)

var (
	// looseSlashDate detects an MM/DD/YYYY-shaped run whose separators may be
	// irregular whitespace instead of slashes.
	looseSlashDate = regexp.MustCompile(`\b\d{1,2}\s*[/\s]\s*\d{1,2}\s*[/\s]\s*\d{4}\b`)
	digitSep       = regexp.MustCompile(`(\d)\s*[/\s]\s*(\d)`)
	digitYearSep   = regexp.MustCompile(`(\d{2})\s+(\d{4})`)
)

// CanonicalDateSeparators rewrites an MM/DD/YYYY-shaped run with irregular
// spacing into consistent slash separators. Text without such a run comes
// back unchanged.
func CanonicalDateSeparators(text string) string {
	if !looseSlashDate.MatchString(text) {
		return text
	}
	t := strings.TrimSpace(text)
	t = digitSep.ReplaceAllString(t, "$1/$2")
	t = digitYearSep.ReplaceAllString(t, "$1/$2")
	return t
}

// leadingPMRange matches "<num> PM - <num> <AM|PM>". The leading PM in that
// shape is usually a false reading of a range where only the end carries the
// real meridiem.
var leadingPMRange = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?(?:\.\d{2})?)\s*PM\s*-\s*(\d{1,2}(?::\d{2})?(?:\.\d{2})?\s*(?:AM|PM))`)

// StripLeadingPM drops the first PM from a range start, leaving
// "<num> - <num> <AM|PM>": "3 PM - 5 PM" becomes "3 - 5 PM".
func StripLeadingPM(text string) string {
	return leadingPMRange.ReplaceAllString(text, "$1 - $2")
}
