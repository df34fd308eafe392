package outline

import (
	"strings"

	"github.com/ardnew/sigma/lang"
)

// Host is the variable store used by [Build]. Build calls Reset before
// evaluating the first line.
type Host interface {
	lang.Host
	Reset()
}

// Build evaluates every non-blank line of doc and arranges the lines into a
// tree by indentation.
//
// Each line's value is bound in host as Line<row> and added to the result of
// every ancestor. Lexical errors and evaluation diagnostics are kept on the
// line; they never stop the build.
func Build(doc string, host Host) *Tree {
	host.Reset()

	tree := newTree()
	current := tree.Root()
	row := 0

	for text := range strings.SplitSeq(doc, "\n") {
		text = strings.TrimSuffix(text, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		row++

		line := Line{
			Source: text,
			Indent: indentOf(text),
			Row:    row,
		}

		line.Trailing, line.Currency = trailingWord(text)

		value, err := lang.Eval(text, host)
		line.Value = value.Float()
		line.Result = line.Value
		line.Err = err

		host.SetVar(LineVar(row), line.Value)

		parent := current
		if line.Indent <= tree.lines[current].Indent {
			parent = tree.lines[current].Parent
			for tree.lines[parent].Indent >= line.Indent {
				parent = tree.lines[parent].Parent
			}
		}

		current = tree.add(parent, line)

		for p := parent; p >= 0; p = tree.lines[p].Parent {
			tree.lines[p].Result += line.Value
		}

		tree.lines[parent].Currency = line.Currency
	}

	return tree
}

// indentOf counts the leading ' ' characters of s.
func indentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

// trailingWord returns the last whitespace-separated word of s without any
// '$' or '_', and whether the word contained a '$'.
func trailingWord(s string) (word string, currency bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}

	last := fields[len(fields)-1]
	currency = strings.ContainsRune(last, '$')

	return strings.NewReplacer("$", "", "_", "").Replace(last), currency
}
