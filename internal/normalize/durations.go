// Package normalize holds the rewrite passes that canonicalize noisy
// date/time substrings before scanning. Every pass is pure, returns a new
// string, and is idempotent on its own output.
package normalize

import (
	"regexp"
	"strings"
)

// durationPatterns match standalone "<number> <unit>" phrases.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+\s*hours?\b`),
	regexp.MustCompile(`(?i)\b\d+\s*minutes?\b`),
	regexp.MustCompile(`(?i)\b\d+\s*seconds?\b`),
	regexp.MustCompile(`(?i)\b\d+\s*days?\b`),
	regexp.MustCompile(`(?i)\b\d+\s*weeks?\b`),
	regexp.MustCompile(`(?i)\b\d+\s*months?\b`),
	regexp.MustCompile(`(?i)\b\d+\s*years?\b`),
}

// adjacentDigitRun matches trailing context that continues a numeric run,
// e.g. the "-1200" after "0800" in "0800-1200".
var adjacentDigitRun = regexp.MustCompile(`^[\s-]*\d`)

// CleanDurations removes standalone duration phrases such as "2 hours" or
// "30 minutes". A phrase is kept when it is followed by an adjacent digit
// run, so numeric ranges stay intact. RE2 has no lookahead; the refusal is a
// post-match check on the trailing text.
func CleanDurations(text string) string {
	for _, re := range durationPatterns {
		text = removeUnlessDigitRun(re, text)
	}
	return strings.TrimSpace(text)
}

func removeUnlessDigitRun(re *regexp.Regexp, text string) string {
	locs := re.FindAllStringIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		if adjacentDigitRun.MatchString(text[loc[1]:]) {
			continue
		}
		b.WriteString(text[last:loc[0]])
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
