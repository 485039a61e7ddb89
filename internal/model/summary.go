package model

import "time"

// BatchSummary captures metrics from a single batch extraction run.
type BatchSummary struct {
	FilePath      string
	FileSHA256    string
	BatchID       string
	RowsRead      int64
	DatesFound    int64
	TimesFound    int64
	RowsEmpty     int64 // rows where neither a date nor a time was found
	DurationLoad  time.Duration
	DurationTotal time.Duration
}
