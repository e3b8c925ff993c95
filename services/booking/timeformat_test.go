package booking

import (
	"errors"
	"testing"
)

func TestNormalizeInterval(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"09:00-09:50", "9:00-9:50"},
		{"09:05-09:55", "9:05-9:55"},
		{"09:30-10:20", "9:30-10:20"},
		{"9:00-9:50", "9:00-9:50"},
		{"10:00-10:50", "10:00-10:50"},
		{"14:00-14:30", "14:00-14:30"},
		// Only a zero-prefixed start hour triggers normalization; an
		// already-short start leaves the end untouched.
		{"9:00-09:50", "9:00-09:50"},
	}
	for _, tc := range cases {
		got, err := NormalizeInterval(tc.raw)
		if err != nil {
			t.Errorf("NormalizeInterval(%q) returned error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeInterval(%q) = %q, want %q", tc.raw, got, tc.want)
		}

		// Normalizing twice must equal normalizing once.
		again, err := NormalizeInterval(got)
		if err != nil {
			t.Errorf("NormalizeInterval(%q) (second pass) returned error: %v", got, err)
			continue
		}
		if again != got {
			t.Errorf("NormalizeInterval not idempotent: %q -> %q -> %q", tc.raw, got, again)
		}
	}
}

func TestNormalizeIntervalRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"9:00",
		"09:00",
		"0900-0950",
		"9:0-9:50",
		"9:00-9:5",
		"aa:bb-cc:dd",
		"09:00 - 09:50",
		"09:00-09:50-10:40",
	}
	for _, raw := range cases {
		_, err := NormalizeInterval(raw)
		if err == nil {
			t.Errorf("NormalizeInterval(%q) accepted malformed input", raw)
			continue
		}
		var invalid *InvalidTimeFormatError
		if !errors.As(err, &invalid) {
			t.Errorf("NormalizeInterval(%q) error = %v, want InvalidTimeFormatError", raw, err)
		}
	}
}
