package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var checkInTime = regexp.MustCompile(`(?i)(CHECK\s*(?:IN|OUT))\s*[@:\s-]*(\d{2})(\d{2})`)

// CheckInColon rewrites "CHECK IN@1704" / "CHECK OUT - 1030" shapes into the
// same label plus a colon time: "CHECK IN 17:04".
func CheckInColon(text string) string {
	return checkInTime.ReplaceAllString(text, "$1 $2:$3")
}

var (
	compactClock   = regexp.MustCompile(`^(\d{1,2})(\d{2})(AM|PM)?$`)
	hourMinutePair = regexp.MustCompile(`(\d{2})([^\d]*)(\d{2})`)
)

// CompactTimeToColon reinterprets bare 3/4-digit chunks as clock times.
// A whole-string match like "1704" or "145PM" becomes "17:04" / "01:45PM".
// Otherwise the first two 2-digit groups forming a valid hour/minute pair are
// rewritten as "HH:MM" and returned; text with no valid pair comes back
// unchanged. Input is trimmed and upper-cased first.
func CompactTimeToColon(text string) string {
	text = strings.ToUpper(strings.TrimSpace(text))

	if m := compactClock.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d:%02d%s", h, min, m[3])
	}

	for _, m := range hourMinutePair.FindAllStringSubmatch(text, -1) {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[3])
		if h <= 23 && min <= 59 {
			if m[2] == ":" {
				// already canonical
				return text
			}
			return m[1] + ":" + m[3]
		}
	}
	return text
}

var hourOnClock = regexp.MustCompile(`\b(\d{2})(00)\b`)

// HourPairColon rewrites bare on-the-hour pairs: "0800" becomes "08:00".
func HourPairColon(text string) string {
	return hourOnClock.ReplaceAllString(text, "$1:$2")
}

// meridiemRange matches a clock range whose endpoints may carry meridiems,
// e.g. "9:00 AM-11:00 AM".
var meridiemRange = regexp.MustCompile(`\b(\d{1,2}:\d{2}\s*(?:AM|PM)?\s*-\s*\d{1,2}:\d{2}\s*(?:AM|PM)?)\b`)

// RangeDashToAnd joins range endpoints with " and " so the dash cannot be
// misread as subtraction: "9:00 AM-11:00 AM" becomes "9:00 AM and 11:00 AM".
func RangeDashToAnd(text string) string {
	return meridiemRange.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ReplaceAll(m, "-", " and ")
	})
}

var shorthandRange = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?)\s*(AM|PM)?\s*-\s*(\d{1,2}(?::\d{2})?)\s*(AM|PM)?`)

// CanonicalRange normalizes shorthand time ranges ("9-2PM", "9am - 2pm") to a
// consistent "9:00-2:00PM" form, inserting ":00" where minutes are absent and
// reattaching whichever meridiem tokens were present, per side. Duration
// phrases, noise tokens, and a false leading PM are stripped first.
func CanonicalRange(text string) string {
	text = CleanDurations(text)
	text = StripNoiseTokens(text)
	text = StripLeadingPM(text)

	return shorthandRange.ReplaceAllStringFunc(text, func(m string) string {
		g := shorthandRange.FindStringSubmatch(m)
		start, end := strings.TrimSpace(g[1]), strings.TrimSpace(g[3])
		if !strings.Contains(start, ":") {
			start += ":00"
		}
		if !strings.Contains(end, ":") {
			end += ":00"
		}
		return start + strings.ToUpper(g[2]) + "-" + end + strings.ToUpper(g[4])
	})
}
