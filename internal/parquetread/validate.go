package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/timesift/internal/model"
)

// ValidateSchema checks that the Parquet schema contains every column the
// extraction pipeline reads.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	for _, col := range model.MessageColumns() {
		if !columns[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}
	return nil
}
