package extract

import (
	"time"

	"github.com/gyeh/timesift/internal/model"
)

// FormatDate renders a calendar date as MM/DD/YYYY, the one output shape
// every consumer of this package agrees on.
func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// FormatTimeOfDay renders t's clock in both 12-hour and 24-hour form. The
// zone label, when present, is carried through verbatim; no offset math is
// applied to it.
func FormatTimeOfDay(t time.Time, zone string) model.TimeOfDay {
	return model.TimeOfDay{
		Clock:    t.Format("03:04"),
		Military: t.Format("15:04"),
		Meridiem: t.Format("PM"),
		Timezone: zone,
	}
}
