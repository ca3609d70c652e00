package format

import (
	"testing"
	"time"
)

func TestCompileDateLayout(t *testing.T) {
	reference := time.Date(2026, time.March, 7, 14, 5, 9, 120_000_000, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd HH:mm:ss", "2026-03-07 14:05:09"},
		{"yyyy-MM-dd", "2026-03-07"},
		{"dd.MM.yy", "07.03.26"},
		{"d.M.yyyy", "7.3.2026"},
		{"HH:mm", "14:05"},
		{"hh:mm a", "02:05 PM"},
		{"ss.SSS", "09.120"},
		{"EEE, MMM d", "Sat, Mar 7"},
		{"EEEE", "Saturday"},
		{"MMMM yyyy", "March 2026"},
		{"'at' HH:mm", "at 14:05"},
	}
	for _, tt := range tests {
		layout := CompileDateLayout(tt.pattern)
		if got := reference.Format(layout); got != tt.want {
			t.Errorf("CompileDateLayout(%q) = %q, formats to %q, want %q", tt.pattern, layout, got, tt.want)
		}
	}
}

func TestCompileDateLayout_PassesSeparatorsThrough(t *testing.T) {
	if got := CompileDateLayout("yyyy/MM/dd"); got != "2006/01/02" {
		t.Errorf("Expected '2006/01/02', got %q", got)
	}
}

func TestCompileDateLayout_DoubledQuote(t *testing.T) {
	reference := time.Date(2026, time.March, 7, 14, 5, 9, 0, time.UTC)
	layout := CompileDateLayout("HH 'o''clock'")
	if got := reference.Format(layout); got != "14 o'clock" {
		t.Errorf("Expected \"14 o'clock\", got %q", got)
	}
}
