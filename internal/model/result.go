package model

import "github.com/google/uuid"

// TimeOfDay is the fully-resolved clock portion of an extraction.
// Fields are filled together or not at all: absence is signaled by the ok
// return of the producing call, never by a partially filled value.
type TimeOfDay struct {
	Clock    string `json:"time"`          // 12-hour HH:MM
	Military string `json:"military_time"` // 24-hour HH:MM
	Meridiem string `json:"meridiem"`      // "AM" or "PM"
	Timezone string `json:"timezone"`      // pass-through label, empty if unknown
}

// ExtractionRow is the DB-ready result of running the extractor over one message.
// Nullable columns use pointers so a COPY writes SQL NULL for absent values.
type ExtractionRow struct {
	BatchID   uuid.UUID
	MessageID string

	Date     *string // MM/DD/YYYY
	Clock    *string
	Military *string
	Meridiem *string
	Timezone *string

	Strategy string
}

// ExtractionColumns returns the COPY column order for extract.results.
func ExtractionColumns() []string {
	return []string{
		"batch_id",
		"message_id",
		"extracted_date",
		"clock_time",
		"military_time",
		"meridiem",
		"timezone",
		"strategy",
	}
}

// CopyValues returns the row's values in ExtractionColumns order.
func (r *ExtractionRow) CopyValues() []any {
	return []any{
		r.BatchID,
		r.MessageID,
		r.Date,
		r.Clock,
		r.Military,
		r.Meridiem,
		r.Timezone,
		r.Strategy,
	}
}

// SetTime fills the clock columns from a resolved TimeOfDay.
func (r *ExtractionRow) SetTime(t TimeOfDay) {
	r.Clock = optStr(t.Clock)
	r.Military = optStr(t.Military)
	r.Meridiem = optStr(t.Meridiem)
	r.Timezone = optStr(t.Timezone)
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
