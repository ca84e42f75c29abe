package zenquotes

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"random", ModeRandom, true},
		{"  TODAY ", ModeToday, true},
		{"author", ModeAuthor, true},
		{"on-this-day", ModeOnThisDay, true},
		{"quotes", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMode(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDescribe(t *testing.T) {
	wrapped := fmt.Errorf("fetch: %w", ErrEmptyResult)
	if got := Describe(wrapped); got != "Nothing was returned for this request." {
		t.Fatalf("Describe(empty) = %q", got)
	}
	if got := Describe(errors.New("boom")); got == "" {
		t.Fatalf("Describe(other) returned empty string")
	}
	if got := Describe(nil); got != "" {
		t.Fatalf("Describe(nil) = %q, want empty", got)
	}
}
