package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// protectedPatterns are the date/time shapes that must survive noise removal:
// hour (or HH:MM) with meridiem, hour ranges ending in a meridiem, day-of-month
// followed by a month name, and meridiem-bounded ranges.
var protectedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*[AP]M\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s*-\s*\d{1,2}\s*[AP]M\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s*(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:AM|PM)?\s*-\s*\d{1,2}(?:AM|PM)?\b`),
}

// noiseToken matches standalone digits-followed-by-letters junk like "24hrs".
var noiseToken = regexp.MustCompile(`\b\d+[a-zA-Z]+\b`)

// StripNoiseTokens removes standalone alphanumeric junk while protecting
// legitimate date/time shapes behind placeholder tokens. Restoration is a
// literal substring replacement: when a protected phrase recurs verbatim
// elsewhere in the text, the wrong occurrence can be restored. Known
// limitation, kept as-is.
func StripNoiseTokens(text string) string {
	type protected struct {
		placeholder string
		text        string
	}
	var saved []protected
	for _, re := range protectedPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if !strings.Contains(text, m) {
				continue
			}
			p := protected{fmt.Sprintf("PLACEHOLDER_%d", len(saved)), m}
			saved = append(saved, p)
			text = strings.ReplaceAll(text, m, p.placeholder)
		}
	}

	text = noiseToken.ReplaceAllString(text, "")

	for _, p := range saved {
		text = strings.ReplaceAll(text, p.placeholder, p.text)
	}
	return strings.TrimSpace(text)
}
