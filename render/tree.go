package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/sigma/outline"
)

// Number is a float64 that encodes non-finite values as strings, which
// neither JSON nor most YAML readers accept as numbers.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if s, ok := n.nonFinite(); ok {
		return []byte(strconv.Quote(s)), nil
	}

	return strconv.AppendFloat(nil, float64(n), 'g', -1, 64), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (n Number) MarshalYAML() (any, error) {
	if s, ok := n.nonFinite(); ok {
		return s, nil
	}

	return float64(n), nil
}

func (n Number) nonFinite() (string, bool) {
	f := float64(n)

	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	default:
		return "", false
	}
}

// Node is the nested form of a line used by the JSON and YAML encoders.
type Node struct {
	Source   string  `json:"source"             yaml:"source"`
	Display  string  `json:"display"            yaml:"display"`
	Error    string  `json:"error,omitempty"    yaml:"error,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
	Value    Number  `json:"value"              yaml:"value"`
	Result   Number  `json:"result"             yaml:"result"`
	Row      int     `json:"row"                yaml:"row"`
	Indent   int     `json:"indent"             yaml:"indent"`
	Currency bool    `json:"currency"           yaml:"currency"`
}

// Nest converts tree into nested nodes rooted at the tree's root, with
// children in insertion order.
func Nest(tree *outline.Tree, f Formatter) *Node {
	return nest(tree, tree.Root(), f)
}

func nest(tree *outline.Tree, i int, f Formatter) *Node {
	line := tree.Line(i)

	node := &Node{
		Source:   strings.TrimLeft(line.Source, " "),
		Display:  display(tree, i, f),
		Error:    errText(tree, i),
		Value:    Number(line.Value),
		Result:   Number(line.Result),
		Row:      line.Row,
		Indent:   line.Indent,
		Currency: line.Currency,
	}

	for _, c := range line.Children {
		node.Children = append(node.Children, nest(tree, c, f))
	}

	return node
}

// JSON writes the nested tree as a JSON object.
func JSON(w io.Writer, tree *outline.Tree, f Formatter, opts Options) error {
	var (
		data []byte
		err  error
	)

	if opts.Indent > 0 {
		data, err = json.MarshalIndent(Nest(tree, f), "", strings.Repeat(" ", opts.Indent))
	} else {
		data, err = json.Marshal(Nest(tree, f))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// YAML writes the nested tree as a YAML document.
func YAML(ctx context.Context, w io.Writer, tree *outline.Tree, f Formatter, opts Options) error {
	var encOpts []yaml.EncodeOption
	if opts.Indent > 0 {
		encOpts = append(encOpts, yaml.Indent(opts.Indent))
	} else {
		encOpts = append(encOpts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, Nest(tree, f), encOpts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
