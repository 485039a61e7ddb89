package extract

import (
	"github.com/gyeh/timesift/internal/model"
	"github.com/gyeh/timesift/internal/normalize"
)

// DateWithStrategy runs SingleDate over strat's rewrite of text, then over
// the unmodified text when the rewrite yielded nothing. A nil strat skips
// straight to the plain pass.
func (e *Extractor) DateWithStrategy(text string, strat normalize.Strategy) (string, bool) {
	if strat != nil {
		if rewritten := strat.Transform(text); rewritten != text {
			if d, ok := e.SingleDate(rewritten); ok {
				return d, true
			}
		}
	}
	return e.SingleDate(text)
}

// TimeWithStrategy is the time-of-day counterpart of DateWithStrategy.
func (e *Extractor) TimeWithStrategy(text string, strat normalize.Strategy) (model.TimeOfDay, bool) {
	if strat != nil {
		if rewritten := strat.Transform(text); rewritten != text {
			if t, ok := e.SingleTime(rewritten); ok {
				return t, true
			}
		}
	}
	return e.SingleTime(text)
}
