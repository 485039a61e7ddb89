package scan

import (
	"testing"
	"time"
)

func TestWhenFuzzy_WholeStringForms(t *testing.T) {
	f := NewWhenFuzzy(testNow)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"09/15/2024", time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{"09/15/2024 17:30", time.Date(2024, time.September, 15, 17, 30, 0, 0, time.UTC)},
		{"September 15, 2024", time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-09-15", time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{"17:04", time.Date(2024, time.March, 14, 17, 4, 0, 0, time.UTC)},
		{"3pm", time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		c, err := f.Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if !c.Time.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, c.Time, tt.want)
		}
	}
}

func TestWhenFuzzy_SlashDatesAreMonthFirst(t *testing.T) {
	f := NewWhenFuzzy(testNow)
	c, err := f.Parse("03/04/2024")
	if err != nil {
		t.Fatal(err)
	}
	if c.Time.Month() != time.March || c.Time.Day() != 4 {
		t.Errorf("03/04/2024 parsed as %v, want March 4", c.Time)
	}
}

func TestWhenFuzzy_CasualPhrases(t *testing.T) {
	f := NewWhenFuzzy(testNow)
	c, err := f.Parse("tomorrow")
	if err != nil {
		t.Fatal(err)
	}
	if c.Time.Day() != 15 || c.Time.Month() != time.March {
		t.Errorf("tomorrow resolved to %v", c.Time)
	}
}

func TestWhenFuzzy_Errors(t *testing.T) {
	f := NewWhenFuzzy(testNow)
	for _, in := range []string{"", "   ", "nothing here"} {
		if _, err := f.Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}
