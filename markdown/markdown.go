// Package markdown extracts outline documents embedded in Markdown notes as
// fenced code blocks.
//
//	```sigma
//	Rent 1200$
//	Food 300
//	```
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// DefaultLang is the info string language of outline blocks.
const DefaultLang = "sigma"

// Block is a fenced code block.
type Block struct {
	// Source is the block content without the fences.
	Source string
	// Line is the 1-based line of the opening fence.
	Line int
}

// Blocks returns the fenced code blocks in src whose info string language
// equals lang, ignoring case, in document order. An empty lang selects
// [DefaultLang].
func Blocks(src []byte, lang string) []Block {
	if lang == "" {
		lang = DefaultLang
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []Block

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		if !strings.EqualFold(string(fenced.Language(src)), lang) {
			return ast.WalkSkipChildren, nil
		}

		blocks = append(blocks, Block{
			Source: content(fenced, src),
			Line:   fenceLine(fenced, src),
		})

		return ast.WalkSkipChildren, nil
	})

	return blocks
}

func content(n *ast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer

	lines := n.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}

	return buf.String()
}

// fenceLine locates the opening fence from the info string, or from the
// first content line when the info segment is unavailable.
func fenceLine(n *ast.FencedCodeBlock, src []byte) int {
	if n.Info != nil {
		return lineAt(src, n.Info.Segment.Start)
	}

	if n.Lines().Len() > 0 {
		return lineAt(src, n.Lines().At(0).Start) - 1
	}

	return 0
}

// lineAt returns the 1-based line containing byte offset off.
func lineAt(src []byte, off int) int {
	off = min(off, len(src))

	return bytes.Count(src[:off], []byte("\n")) + 1
}
