// Package extract selects a single date and a single time of day from
// free-form text. Selection runs over the candidates produced by
// internal/scan, after the text rewrites in internal/normalize.
package extract

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/timesift/internal/model"
	"github.com/gyeh/timesift/internal/normalize"
	"github.com/gyeh/timesift/internal/scan"
)

// ambiguityThreshold is the candidate count at which a scan is considered
// ambiguous: the selectors log a warning and dates get a narrowed rescan.
const ambiguityThreshold = 2

// Extractor picks one date and one time out of noisy text. All selection
// methods are total: they log and report absence instead of failing.
type Extractor struct {
	scanner scan.Scanner
	fuzzy   scan.Fuzzy
	now     func() time.Time
	log     zerolog.Logger
}

// New wires an extractor from explicit ports. Tests inject a fixed clock
// and a capturing logger here.
func New(scanner scan.Scanner, fuzzy scan.Fuzzy, now func() time.Time, log zerolog.Logger) *Extractor {
	return &Extractor{scanner: scanner, fuzzy: fuzzy, now: now, log: log}
}

// NewDefault builds an extractor on the wall clock with the default
// scanner and fuzzy parser.
func NewDefault(log zerolog.Logger) *Extractor {
	return New(scan.NewPhraseScanner(time.Now), scan.NewWhenFuzzy(time.Now), time.Now, log)
}

// Extract runs both selectors over text, trying strat's rewrite first.
// Nil pointers mean the corresponding value was absent.
func (e *Extractor) Extract(text string, strat normalize.Strategy) (date *string, tod *model.TimeOfDay) {
	if d, ok := e.DateWithStrategy(text, strat); ok {
		date = &d
	}
	if t, ok := e.TimeWithStrategy(text, strat); ok {
		tod = &t
	}
	return date, tod
}

// scan strips duration mentions and hands the rest to the scanner.
func (e *Extractor) scan(text string) []scan.Candidate {
	return e.scanner.Scan(normalize.CleanDurations(text))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
