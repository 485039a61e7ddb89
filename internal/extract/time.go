package extract

import (
	"github.com/gyeh/timesift/internal/model"
	"github.com/gyeh/timesift/internal/normalize"
	"github.com/gyeh/timesift/internal/scan"
)

const midnight = "00:00"

// SingleTime selects one time of day from text. The last candidate wins,
// because a trailing clock is usually the operative one ("3PM-5PM" means
// done by 5). Bare midnight is treated as a scanner default fill, never a
// real answer. ok is false when the text holds no usable clock.
func (e *Extractor) SingleTime(text string) (tod model.TimeOfDay, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Str("text", text).Interface("panic", r).Msg("time selection aborted")
			tod, ok = model.TimeOfDay{}, false
		}
	}()

	prep := normalize.RangeDashToAnd(normalize.HourPairColon(text))
	cands := e.scan(prep)

	// An empty scan is final; the fuzzy parser is only consulted to break
	// a tie between scanned candidates.
	if len(cands) == 0 {
		e.log.Warn().Str("text", text).Msg("no valid time found in input")
		return model.TimeOfDay{}, false
	}

	if len(cands) >= ambiguityThreshold {
		e.log.Warn().Str("text", text).Int("candidates", len(cands)).
			Msg("more than one date/time value found")
	}

	if t := timeOfDay(cands[len(cands)-1]); t.Military != midnight {
		return t, true
	}

	if c, err := e.fuzzy.Parse(prep); err == nil {
		if t := timeOfDay(c); t.Military != midnight {
			return t, true
		}
	}

	// Walk the remaining candidates back to front; the latest clock that
	// is not a midnight fill still wins.
	for i := len(cands) - 2; i >= 0; i-- {
		if t := timeOfDay(cands[i]); t.Military != midnight {
			return t, true
		}
	}

	e.log.Warn().Str("text", text).Msg("no valid time found in input")
	return model.TimeOfDay{}, false
}

func timeOfDay(c scan.Candidate) model.TimeOfDay {
	return FormatTimeOfDay(c.Time, c.Zone)
}
