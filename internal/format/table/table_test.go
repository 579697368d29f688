package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"multiple:", "first, second"},
		{"single:", "third"},
	}, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"multiple:  first, second",
		"single:    third",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"1", "a"}, {"100", "b"}}, []Alignment{AlignRight})
	if got[0] != "  1  a" || got[1] != "100  b" {
		t.Fatalf("unexpected right alignment: %q", got)
	}
}

func TestFormatMeasuresVisibleWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	got := Format([][]string{{styled, "x"}, {"abcd", "y"}}, nil)
	if want := styled + "    x"; got[0] != want {
		t.Fatalf("expected %q, got %q", want, got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
