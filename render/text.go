package render

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/ardnew/sigma/outline"
)

// Text writes one tab-separated row per line: the row index (optional), the
// indented source, the result and the diagnostic, if any.
func Text(w io.Writer, tree *outline.Tree, f Formatter, opts Options) error {
	bw := bufio.NewWriter(w)

	for i := range tree.Rows(opts.Order) {
		fields := make([]string, 0, 4)

		if opts.Index {
			fields = append(fields, rowIndex(tree, i))
		}

		fields = append(fields, label(tree, i), display(tree, i, f))

		if msg := errText(tree, i); msg != "" {
			fields = append(fields, msg)
		}

		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// CSV writes a header and one record per line: row, source, result.
// Results are unformatted so the output can be read back as numbers. The
// root row has an empty row number.
func CSV(w io.Writer, tree *outline.Tree, _ Formatter, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"row", "source", "result"}); err != nil {
		return err
	}

	for i := range tree.Rows(opts.Order) {
		line := tree.Line(i)

		record := []string{
			rowIndex(tree, i),
			strings.TrimLeft(line.Source, " "),
			strconv.FormatFloat(line.Result, 'f', -1, 64),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
