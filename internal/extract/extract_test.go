package extract

import (
	"bytes"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/timesift/internal/scan"
)

// All selector tests run against Thursday, March 14 2024, 10:30 UTC.
var testBase = time.Date(2024, time.March, 14, 10, 30, 0, 0, time.UTC)

func testNow() time.Time { return testBase }

func newTestExtractor() (*Extractor, *bytes.Buffer) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	e := New(scan.NewPhraseScanner(testNow), scan.NewWhenFuzzy(testNow), testNow, log)
	return e, &buf
}

type stubScanner struct{ cands []scan.Candidate }

func (s stubScanner) Scan(string) []scan.Candidate { return s.cands }

type stubFuzzy struct {
	cand scan.Candidate
	err  error
}

func (f stubFuzzy) Parse(string) (scan.Candidate, error) { return f.cand, f.err }

func newStubExtractor(s scan.Scanner, f scan.Fuzzy) (*Extractor, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(s, f, testNow, zerolog.New(&buf)), &buf
}
