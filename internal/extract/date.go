package extract

import (
	"regexp"
	"strings"

	"github.com/gyeh/timesift/internal/normalize"
)

const monthAbbr = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`

// narrowDatePatterns match only fully written dates. When a scan turns up
// two or more candidates, a rescan restricted to these shapes drops the
// bare clocks and stray years that inflated the count.
var narrowDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
	regexp.MustCompile(`(?i)\b` + monthAbbr + `[a-z]*\.?\s+\d{1,2},?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+` + monthAbbr + `[a-z]*\.?\s+\d{4}\b`),
}

var durationWord = regexp.MustCompile(`(?i)\b(?:min|minute|hour|sec|second|day|week|month|year)s?\b`)

// SingleDate selects one calendar date from text and formats it MM/DD/YYYY.
// The first candidate that does not fall on the current day wins; today is
// returned only when every candidate lands on it. ok is false when the text
// holds no date at all.
func (e *Extractor) SingleDate(text string) (date string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Str("text", text).Interface("panic", r).Msg("date selection aborted")
			date, ok = "", false
		}
	}()

	prep := normalize.StripLeadingPM(normalize.CanonicalDateSeparators(text))
	cands := e.scan(prep)

	// An empty scan is final: the fuzzy parser only disambiguates between
	// candidates the scan produced, it never conjures a date on its own.
	if len(cands) == 0 {
		e.log.Warn().Str("text", text).Msg("no valid date found in input")
		return "", false
	}

	originalCount := len(cands)
	if originalCount >= ambiguityThreshold {
		if narrowed := narrowDates(prep); len(narrowed) > 0 {
			cands = e.scan(strings.Join(narrowed, " "))
		}
	}

	today := e.now()
	var result string
	var found bool
	for _, c := range cands {
		if !sameDay(c.Time, today) {
			result, found = FormatDate(c.Time), true
			break
		}
	}

	if !found {
		if c, err := e.fuzzy.Parse(prep); err == nil && !sameDay(c.Time, today) {
			result, found = FormatDate(c.Time), true
		}
	}

	// Every candidate resolved to the current day, so the text really does
	// refer to today.
	if !found && len(cands) > 0 {
		result, found = FormatDate(today), true
	}

	if !found {
		e.log.Warn().Str("text", text).Msg("no valid date found in input")
		return "", false
	}

	// The ambiguity diagnostic accompanies a returned value, never an
	// absent one.
	if originalCount >= ambiguityThreshold {
		e.log.Warn().Str("text", text).Int("candidates", originalCount).
			Msg("more than one date/time value found")
	}
	return result, true
}

// narrowDates returns the fully written date phrases in text, skipping any
// phrase that is actually a duration mention.
func narrowDates(text string) []string {
	var out []string
	for _, re := range narrowDatePatterns {
		for _, m := range re.FindAllString(text, -1) {
			if durationWord.MatchString(m) {
				continue
			}
			out = append(out, m)
		}
	}
	return out
}
