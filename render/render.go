// Package render writes an evaluated [outline.Tree] in one of several
// presentation formats.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/sigma/outline"
)

// Formatter renders a number for display. [lang.Vars] implements it.
type Formatter interface {
	Format(value float64) string
}

// Options controls presentation. Digit grouping and locale belong to the
// [Formatter].
type Options struct {
	// Order arranges the rows. The root row always comes last.
	Order outline.Order
	// Index adds a column with each line's row number.
	Index bool
	// Indent is the indent width of JSON and YAML output; 0 selects the
	// compact form.
	Indent int
}

// Format names an output format.
type Format string

// Output formats.
const (
	FormatTable Format = "table"
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatTable, FormatText, FormatJSON, FormatYAML, FormatCSV}
}

// ParseFormat returns the Format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))

	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q", s)
}

// Write renders tree to w in the given format.
func Write(
	ctx context.Context,
	w io.Writer,
	format Format,
	tree *outline.Tree,
	f Formatter,
	opts Options,
) error {
	switch format {
	case FormatTable, "":
		return Table(w, tree, f, opts)
	case FormatText:
		return Text(w, tree, f, opts)
	case FormatJSON:
		return JSON(w, tree, f, opts)
	case FormatYAML:
		return YAML(ctx, w, tree, f, opts)
	case FormatCSV:
		return CSV(w, tree, f, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// display returns the formatted result of line i, prefixed with '$' when
// the line is marked as currency.
func display(tree *outline.Tree, i int, f Formatter) string {
	line := tree.Line(i)

	s := f.Format(line.Result)
	if line.Currency {
		return "$" + s
	}

	return s
}

// label returns the source of line i without its indentation, padded by
// depth.
func label(tree *outline.Tree, i int) string {
	return strings.Repeat("  ", tree.Depth(i)) + strings.TrimLeft(tree.Line(i).Source, " ")
}

func rowIndex(tree *outline.Tree, i int) string {
	if tree.Line(i).IsRoot() {
		return ""
	}

	return fmt.Sprint(tree.Line(i).Row)
}

func errText(tree *outline.Tree, i int) string {
	if err := tree.Line(i).Err; err != nil {
		return err.Error()
	}

	return ""
}

func hasErrors(tree *outline.Tree) bool {
	for _, line := range tree.Lines() {
		if line.Err != nil {
			return true
		}
	}

	return false
}
