package scan

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Layout sweeps for whole-string parsing, tried in order.
var (
	fuzzyDateTimeLayouts = []string{
		"1/2/2006 15:04",
		"1/2/2006 3:04PM",
		"1/2/2006 3:04 PM",
		"2006-1-2 15:04",
		"January 2, 2006 3:04PM",
		"January 2, 2006 3:04 PM",
	}
	fuzzyDateLayouts = []string{
		"1/2/2006",
		"1-2-2006",
		"2006-1-2",
		"January 2, 2006",
		"January 2 2006",
		"Jan 2, 2006",
		"Jan 2 2006",
		"2 January 2006",
		"2 Jan 2006",
	}
	fuzzyTimeLayouts = []string{
		"15:04:05",
		"15:04",
		"3:04PM",
		"3:04 PM",
		"3PM",
		"3 PM",
	}
)

// WhenFuzzy is the default Fuzzy implementation: olebedev/when over the full
// string, then a whole-string layout sweep.
type WhenFuzzy struct {
	now func() time.Time
	w   *when.Parser
}

// NewWhenFuzzy builds a fuzzy parser around the given clock.
func NewWhenFuzzy(now func() time.Time) *WhenFuzzy {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenFuzzy{now: now, w: w}
}

// Parse extracts a single best-effort timestamp from text. Missing clock
// fields resolve to midnight; missing calendar fields resolve to the base
// date, mirroring the scanner's default fill.
func (f *WhenFuzzy) Parse(text string) (Candidate, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Candidate{}, fmt.Errorf("fuzzy parse: empty text")
	}
	base := f.now()
	upper := strings.ToUpper(trimmed)
	for _, layout := range fuzzyDateTimeLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return Candidate{Time: t, Text: trimmed}, nil
		}
	}
	for _, layout := range fuzzyDateLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			year := t.Year()
			if year == 0 {
				year = base.Year()
			}
			d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, base.Location())
			return Candidate{Time: d, Text: trimmed}, nil
		}
	}
	for _, layout := range fuzzyTimeLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			d := time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, base.Location())
			return Candidate{Time: d, Text: trimmed}, nil
		}
	}
	// Casual phrases last: the slash layouts above must win for plain
	// numeric dates, which the casual rules would read day-first.
	if r, err := f.w.Parse(trimmed, base); err == nil && r != nil && r.Text != "" {
		return Candidate{Time: r.Time, Text: r.Text, Pos: r.Index}, nil
	}
	return Candidate{}, fmt.Errorf("fuzzy parse: no timestamp in %q", text)
}
