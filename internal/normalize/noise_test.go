package normalize

import (
	"strings"
	"testing"
)

func TestStripNoiseTokens_RemovesJunk(t *testing.T) {
	got := StripNoiseTokens("gate code 24hrs at the desk")
	if strings.Contains(got, "24hrs") {
		t.Errorf("noise token survived: %q", got)
	}
}

func TestStripNoiseTokens_ProtectsTimeShapes(t *testing.T) {
	tests := []string{
		"open 9-2PM",
		"arrive 3PM",
		"window 10:30AM",
		"due 15 Sep",
		"shift 9AM-5PM",
	}
	for _, in := range tests {
		if got := StripNoiseTokens(in); got != in {
			t.Errorf("StripNoiseTokens(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestStripNoiseTokens_MixedNoiseAndTime(t *testing.T) {
	got := StripNoiseTokens("ref 83xk open 9-2PM")
	if strings.Contains(got, "83xk") {
		t.Errorf("noise token survived: %q", got)
	}
	if !strings.Contains(got, "9-2PM") {
		t.Errorf("protected range damaged: %q", got)
	}
}

func TestStripNoiseTokens_Idempotent(t *testing.T) {
	inputs := []string{
		"ref 83xk open 9-2PM",
		"arrive 3PM",
		"plain text",
		"",
	}
	for _, in := range inputs {
		once := StripNoiseTokens(in)
		if twice := StripNoiseTokens(once); twice != once {
			t.Errorf("not idempotent on %q: %q != %q", in, twice, once)
		}
	}
}
