package repl

import (
	"strings"

	"github.com/ardnew/sigma/lang"
	"github.com/ardnew/sigma/outline"
	"github.com/ardnew/sigma/render"
)

// Session is the working document of a REPL. Every change rebuilds the
// whole outline, so a new line may regroup the lines above it.
type Session struct {
	lines []string
	vars  *lang.Vars
	opts  render.Options
	tree  *outline.Tree
}

// NewSession returns a session starting from doc.
func NewSession(doc string, vars *lang.Vars, opts render.Options) *Session {
	s := &Session{vars: vars, opts: opts}
	s.Replace(doc)

	return s
}

// Append adds line to the end of the document.
func (s *Session) Append(line string) {
	s.lines = append(s.lines, strings.TrimRight(line, "\r\n"))
	s.rebuild()
}

// Undo removes the last line. It reports false if the document is empty.
func (s *Session) Undo() bool {
	if len(s.lines) == 0 {
		return false
	}

	s.lines = s.lines[:len(s.lines)-1]
	s.rebuild()

	return true
}

// Reset empties the document.
func (s *Session) Reset() { s.Replace("") }

// Replace discards the document and starts over from doc.
func (s *Session) Replace(doc string) {
	s.lines = s.lines[:0]

	for line := range strings.SplitSeq(doc, "\n") {
		if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
			s.lines = append(s.lines, line)
		}
	}

	s.rebuild()
}

// Source returns the document text.
func (s *Session) Source() string { return strings.Join(s.lines, "\n") }

// Len returns the number of lines in the document.
func (s *Session) Len() int { return len(s.lines) }

// Tree returns the evaluated document.
func (s *Session) Tree() *outline.Tree { return s.tree }

// Names returns the variables bound by the document in sorted order,
// including the Line<n> variables.
func (s *Session) Names() []string { return s.vars.Names() }

// Vars returns the variable store of the session.
func (s *Session) Vars() *lang.Vars { return s.vars }

// Table renders the evaluated document as a table.
func (s *Session) Table() (string, error) {
	var b strings.Builder

	if err := render.Table(&b, s.tree, s.vars, s.opts); err != nil {
		return "", err
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func (s *Session) rebuild() {
	s.tree = outline.Build(s.Source(), s.vars)
}
