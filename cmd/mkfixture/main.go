// mkfixture writes a small Parquet fixture of noisy messages for local runs
// and integration tests.
// Usage: go run ./cmd/mkfixture --out testdata/messages-small.parquet
package main

import (
	"flag"
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/timesift/internal/model"
)

func strptr(s string) *string { return &s }

// fixtureMessages covers the shapes the extractor is built for: plain
// sentences, compact clocks, check-in labels, shorthand ranges, noise
// tokens, and rows with nothing to find.
var fixtureMessages = []model.MessageRow{
	{MessageID: "m-0001", Text: "We will meet on 09/15/2024 at 3PM."},
	{MessageID: "m-0002", Text: "Delivery window 9AM-5PM on 10/02/2024"},
	{MessageID: "m-0003", Text: "CHECK IN - 0930, CHECK OUT 1100"},
	{MessageID: "m-0004", Text: "1704"},
	{MessageID: "m-0005", Text: "Open 9-2PM Saturday"},
	{MessageID: "m-0006", Text: "Service call 24hrs notice, arrive 10:30AM 11/05/2024"},
	{MessageID: "m-0007", Text: "Lunch at 12:30 PM", Timezone: strptr("PST")},
	{MessageID: "m-0008", Text: "Signed 15 September 2024"},
	{MessageID: "m-0009", Text: "Thanks, talk soon"},
	{MessageID: "m-0010", Text: "Appointment Sep 20, 2024 at 8:15 AM EST", Source: strptr("email")},
}

func main() {
	out := flag.String("out", "testdata/messages-small.parquet", "output parquet")
	flag.Parse()

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	writer := goparquet.NewGenericWriter[model.MessageRow](outFile)
	if _, err := writer.Write(fixtureMessages); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(fixtureMessages), *out)
}
