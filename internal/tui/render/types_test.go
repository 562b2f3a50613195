package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLinesToPlainStrings(t *testing.T) {
	lines := []Line{
		{
			Spans: []Span{
				{Text: "• ", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))},
				{Text: "hello", Style: lipgloss.NewStyle().Bold(true)},
			},
		},
		{Spans: []Span{}},
	}

	got := LinesToPlainStrings(lines)
	want := []string{"• hello", ""}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d mismatch: got %q want %q", i, got[i], want[i])
		}
		if strings.Contains(got[i], "\x1b") {
			t.Errorf("line %d contains ANSI sequences: %q", i, got[i])
		}
	}
}

func TestPadLineFillsToWidth(t *testing.T) {
	line := PadLine(TextLine("ab", lipgloss.Style{}), 5)
	if got := line.Plain(); got != "ab   " {
		t.Fatalf("PadLine plain = %q, want %q", got, "ab   ")
	}
	wide := PadLine(TextLine("abcdef", lipgloss.Style{}), 3)
	if got := wide.Plain(); got != "abcdef" {
		t.Fatalf("PadLine should not shrink lines, got %q", got)
	}
}
