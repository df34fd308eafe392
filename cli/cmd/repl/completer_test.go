package repl

import (
	"slices"
	"testing"

	"github.com/ardnew/sigma/lang"
	"github.com/ardnew/sigma/render"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_minus", "a-fo", 4, "fo", 2, 4},
		{"after_paren", "sqrt(Li", 7, "Li", 5, 7},
		{"after_comma", "max(a, fo", 9, "fo", 7, 9},
		{"after_assign", "x = Line", 8, "Line", 4, 8},
		{"after_colon", "x: ro", 5, "ro", 3, 5},
		{"indented", "    Line1", 9, "Line1", 4, 9},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a*b", 2, "b", 2, 3},
		{"cursor_past_end", "ab", 9, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	s := NewSession("rate = 3\nRent 100", lang.NewVars(), render.Options{})

	got := candidates(s)

	for _, want := range []string{"rate", "Line1", "Line2", "sqrt", "clamp"} {
		if !slices.Contains(got, want) {
			t.Errorf("candidates() = %v, missing %q", got, want)
		}
	}

	if got[0] != "Line1" {
		t.Errorf("variables should come first: %v", got)
	}
}

func TestIsFunction(t *testing.T) {
	if !isFunction("max") || isFunction("Line1") {
		t.Error("isFunction mismatch")
	}
}
