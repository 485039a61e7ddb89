// Package scan finds candidate timestamps in free-form text. The selector
// logic in internal/extract consumes the Scanner and Fuzzy ports defined
// here; PhraseScanner and WhenFuzzy are the default implementations.
package scan

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Candidate is one timestamp produced from a matched phrase.
// A phrase carrying only a date resolves with a midnight clock; a phrase
// carrying only a clock resolves on the scan's base date. The selectors
// disambiguate against exactly these default fills.
type Candidate struct {
	Time time.Time
	Zone string // timezone label written next to the phrase, empty if none
	Text string // the matched phrase
	Pos  int    // byte offset of the phrase in the scanned text
}

// Scanner produces candidates ordered by their phrase's position in the
// text, not by chronological value. Scanning the same text twice yields the
// same sequence.
type Scanner interface {
	Scan(text string) []Candidate
}

// Fuzzy attempts a single best-effort timestamp from a whole string,
// ignoring surrounding noise.
type Fuzzy interface {
	Parse(text string) (Candidate, error)
}

const (
	kindDate = iota
	kindTime
	kindYear
)

// tokenPattern pairs a phrase regex with the layouts that resolve it.
type tokenPattern struct {
	re      *regexp.Regexp
	kind    int
	layouts []string
}

var tokenPatterns = []tokenPattern{
	{
		re:      regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		kind:    kindDate,
		layouts: []string{"1/2/2006", "1-2-2006", "1/2/06", "1-2-06"},
	},
	{
		re:      regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
		kind:    kindDate,
		layouts: []string{"2006-1-2"},
	},
	{
		re:      regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?\b`),
		kind:    kindDate,
		layouts: []string{"January 2, 2006", "January 2 2006", "Jan 2, 2006", "Jan 2 2006", "January 2", "Jan 2"},
	},
	{
		re:      regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?(?:\s+\d{4})?\b`),
		kind:    kindDate,
		layouts: []string{"2 January 2006", "2 Jan 2006", "2 January", "2 Jan"},
	},
	{
		re:      regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}(?::\d{2})?\s*(?:AM|PM)?\b`),
		kind:    kindTime,
		layouts: []string{"3:04PM", "3:04 PM", "15:04:05", "15:04", "3:04:05PM"},
	},
	{
		re:      regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:AM|PM)\b`),
		kind:    kindTime,
		layouts: []string{"3PM", "3 PM"},
	},
	{
		re:      regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
		kind:    kindYear,
		layouts: []string{"2006"},
	},
}

// zoneAfter matches a timezone label immediately following a clock phrase.
// The label is carried through untouched; no offset math happens anywhere.
var zoneAfter = regexp.MustCompile(`^\s*(UTC|GMT|[ECMP][SD]T|AK[SD]T|HST)\b`)

var (
	ordinalSuffix = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b`)
	multiSpace    = regexp.MustCompile(`\s+`)
)

// PhraseScanner is the default Scanner: an ordered regex token scan resolved
// through time.Parse layout lists, with casual English phrases ("tomorrow",
// "next friday at noon") resolved through olebedev/when.
type PhraseScanner struct {
	now func() time.Time
	w   *when.Parser
}

// NewPhraseScanner builds a scanner around the given clock. The clock
// supplies the base date for phrases that carry only a time of day.
func NewPhraseScanner(now func() time.Time) *PhraseScanner {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &PhraseScanner{now: now, w: w}
}

// match is one raw phrase hit before resolution.
type match struct {
	start, end int
	kind       int
	text       string
	layouts    []string
	resolved   time.Time // set only for when-resolved matches
	byWhen     bool
	zone       string
}

// Scan finds all date/time phrases in text, in textual order.
func (s *PhraseScanner) Scan(text string) []Candidate {
	base := s.now()

	var raw []match
	for _, tp := range tokenPatterns {
		for _, loc := range tp.re.FindAllStringIndex(text, -1) {
			m := match{start: loc[0], end: loc[1], kind: tp.kind, text: text[loc[0]:loc[1]], layouts: tp.layouts}
			if tp.kind == kindTime {
				if z := zoneAfter.FindStringSubmatch(text[loc[1]:]); z != nil {
					m.zone = z[1]
				}
			}
			raw = append(raw, m)
		}
	}

	accepted := dedupe(raw)

	// Casual phrases the token patterns cannot see.
	if r, err := s.w.Parse(text, base); err == nil && r != nil && r.Text != "" {
		wm := match{start: r.Index, end: r.Index + len(r.Text), text: r.Text, resolved: r.Time, byWhen: true}
		if !overlapsAny(wm, accepted) {
			accepted = append(accepted, wm)
			sort.SliceStable(accepted, func(i, j int) bool { return accepted[i].start < accepted[j].start })
		}
	}

	var cands []Candidate
	for _, m := range accepted {
		c, ok := s.resolve(m, base)
		if !ok {
			continue
		}
		cands = append(cands, c)
	}
	return mergeAdjacent(cands, text, base)
}

// dedupe keeps the earliest-starting (then longest) non-overlapping matches.
func dedupe(raw []match) []match {
	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].start != raw[j].start {
			return raw[i].start < raw[j].start
		}
		return raw[i].end > raw[j].end
	})
	var out []match
	lastEnd := -1
	for _, m := range raw {
		if m.start < lastEnd {
			continue
		}
		out = append(out, m)
		lastEnd = m.end
	}
	return out
}

func overlapsAny(m match, ms []match) bool {
	for _, o := range ms {
		if m.start < o.end && o.start < m.end {
			return true
		}
	}
	return false
}

// resolve turns a raw match into a candidate anchored on the base time.
func (s *PhraseScanner) resolve(m match, base time.Time) (Candidate, bool) {
	if m.byWhen {
		return Candidate{Time: m.resolved, Text: m.text, Pos: m.start}, true
	}

	token := cleanToken(m.text, m.kind)
	for _, layout := range m.layouts {
		t, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		switch m.kind {
		case kindDate:
			year := t.Year()
			if year == 0 {
				year = base.Year()
			}
			return Candidate{
				Time: time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, base.Location()),
				Text: m.text,
				Pos:  m.start,
			}, true
		case kindTime:
			return Candidate{
				Time: time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, base.Location()),
				Zone: m.zone,
				Text: m.text,
				Pos:  m.start,
			}, true
		case kindYear:
			return Candidate{
				Time: time.Date(t.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location()),
				Text: m.text,
				Pos:  m.start,
			}, true
		}
	}
	return Candidate{}, false
}

// cleanToken canonicalizes a matched phrase for layout parsing.
func cleanToken(text string, kind int) string {
	t := strings.TrimSpace(text)
	t = multiSpace.ReplaceAllString(t, " ")
	if kind == kindTime {
		return strings.ToUpper(t)
	}
	t = ordinalSuffix.ReplaceAllString(t, "$1")
	return strings.ReplaceAll(t, ".", "")
}

var (
	dateTimeGap = regexp.MustCompile(`^[\s,]*(?:at\s+|@\s*)?$`)
	timeDateGap = regexp.MustCompile(`^[\s,]*(?:on\s+)?$`)
)

// mergeAdjacent joins a date phrase and a clock phrase separated only by a
// short connective ("09/15/2024 at 3PM") into a single candidate.
func mergeAdjacent(cands []Candidate, text string, base time.Time) []Candidate {
	var out []Candidate
	for i := 0; i < len(cands); i++ {
		c := cands[i]
		if i+1 < len(cands) {
			next := cands[i+1]
			gap := text[c.Pos+len(c.Text) : next.Pos]
			if len(gap) <= 6 {
				span := text[c.Pos : next.Pos+len(next.Text)]
				if isDateOnly(c) && isClockOnly(next, base) && dateTimeGap.MatchString(gap) {
					merged := combine(c, next)
					merged.Pos, merged.Text = c.Pos, span
					out = append(out, merged)
					i++
					continue
				}
				if isClockOnly(c, base) && isDateOnly(next) && timeDateGap.MatchString(gap) {
					merged := combine(next, c)
					merged.Pos, merged.Text = c.Pos, span
					out = append(out, merged)
					i++
					continue
				}
			}
		}
		out = append(out, c)
	}
	return out
}

func isDateOnly(c Candidate) bool {
	return c.Time.Hour() == 0 && c.Time.Minute() == 0
}

func isClockOnly(c Candidate, base time.Time) bool {
	y, m, d := c.Time.Date()
	by, bm, bd := base.Date()
	return y == by && m == bm && d == bd && !(c.Time.Hour() == 0 && c.Time.Minute() == 0)
}

// combine keeps the date phrase's calendar fields and the clock phrase's
// time of day.
func combine(date, clock Candidate) Candidate {
	t := time.Date(date.Time.Year(), date.Time.Month(), date.Time.Day(),
		clock.Time.Hour(), clock.Time.Minute(), 0, 0, date.Time.Location())
	return Candidate{Time: t, Zone: clock.Zone}
}
