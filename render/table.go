package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/sigma/outline"
)

//nolint:gochecknoglobals
var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	indexStyle  = cellStyle.Foreground(lipgloss.Color("8")).Align(lipgloss.Right)
	resultStyle = cellStyle.Foreground(lipgloss.Color("2")).Align(lipgloss.Right)
	totalStyle  = cellStyle.Bold(true)
	noteStyle   = cellStyle.Foreground(lipgloss.Color("1")).Faint(true)
)

// column identifies a table column.
type column int

const (
	colIndex column = iota
	colLine
	colResult
	colNote
)

// Table writes tree as a bordered terminal table with columns for the row
// index (optional), the indented source, the result and, when any line has
// one, its diagnostic.
func Table(w io.Writer, tree *outline.Tree, f Formatter, opts Options) error {
	cols := []column{colLine, colResult}
	if opts.Index {
		cols = append([]column{colIndex}, cols...)
	}

	if hasErrors(tree) {
		cols = append(cols, colNote)
	}

	headers := make([]string, len(cols))
	for c, col := range cols {
		headers[c] = col.header()
	}

	var (
		rows  [][]string
		total = -1
	)

	for i := range tree.Rows(opts.Order) {
		if tree.Line(i).IsRoot() {
			total = len(rows)
		}

		row := make([]string, len(cols))

		for c, col := range cols {
			switch col {
			case colIndex:
				row[c] = rowIndex(tree, i)
			case colLine:
				row[c] = label(tree, i)
			case colResult:
				row[c] = display(tree, i, f)
			case colNote:
				row[c] = errText(tree, i)
			}
		}

		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, c int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case cols[c] == colIndex:
				return indexStyle
			case cols[c] == colResult:
				return resultStyle
			case cols[c] == colNote:
				return noteStyle
			case row == total:
				return totalStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

func (c column) header() string {
	switch c {
	case colIndex:
		return "#"
	case colLine:
		return "line"
	case colResult:
		return "result"
	case colNote:
		return "note"
	default:
		return ""
	}
}
