package model

// MessageRow is one exported message as read from a batch Parquet file.
// Timezone, when present, is a label attached by the exporting system; it is
// passed through to extraction results without any conversion.
type MessageRow struct {
	MessageID string  `parquet:"message_id"`
	Text      string  `parquet:"text"`
	Timezone  *string `parquet:"timezone,optional"`
	Source    *string `parquet:"source,optional"`
}

// MessageColumns returns the required parquet column names for a message export.
func MessageColumns() []string {
	return []string{"message_id", "text"}
}
