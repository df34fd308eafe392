package repl

import (
	"strings"
	"testing"

	"github.com/ardnew/sigma/lang"
	"github.com/ardnew/sigma/render"
)

func TestSession(t *testing.T) {
	s := NewSession("Bills\n\n  Rent 100\r\n", lang.NewVars(), render.Options{})

	if s.Len() != 2 || s.Source() != "Bills\n  Rent 100" {
		t.Fatalf("Source() = %q", s.Source())
	}

	s.Append("  Food 20")

	if got := s.Tree().Total(); got != 120 {
		t.Errorf("Total() = %v, want 120", got)
	}

	s.Append("Fun 5")

	if got := s.Tree().Total(); got != 125 {
		t.Errorf("Total() = %v, want 125", got)
	}

	if !s.Undo() || s.Tree().Total() != 120 {
		t.Errorf("after Undo, Total() = %v", s.Tree().Total())
	}

	table, err := s.Table()
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Bills", "Rent", "Food", "Total", "120"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}

	s.Reset()

	if s.Len() != 0 || s.Undo() {
		t.Errorf("Reset left %d lines", s.Len())
	}
}

func TestSession_Regroup(t *testing.T) {
	s := NewSession("a 1\nb 2", lang.NewVars(), render.Options{})

	// An indented line nests under the line above it.
	s.Append("  c 3")

	tree := s.Tree()
	if got := tree.Line(2).Result; got != 5 {
		t.Errorf("b result = %v, want 5", got)
	}

	if got := tree.Total(); got != 6 {
		t.Errorf("Total() = %v, want 6", got)
	}
}
