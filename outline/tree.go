package outline

import (
	"iter"
	"strconv"
)

// Line is one record of the tree arena.
type Line struct {
	// Source is the raw line text, including its leading spaces.
	Source string
	// Trailing is the last whitespace-separated word of Source with every
	// '$' and '_' removed.
	Trailing string
	// Err is the advisory diagnostic of the line's expression, if any.
	Err error
	// Children are the arena indices of the direct children, in order.
	Children []int
	// Value is the line's own evaluated value.
	Value float64
	// Result is Value plus the Value of every descendant.
	Result float64
	// Indent is the count of leading spaces; -1 for the root.
	Indent int
	// Row is the 1-based line number among non-blank lines; 0 for the root.
	Row int
	// Parent is the arena index of the parent; -1 for the root.
	Parent int
	// Currency marks a line whose trailing word carried '$', or a parent
	// whose most recently added child did.
	Currency bool
}

// IsRoot reports whether l is the synthetic root line.
func (l *Line) IsRoot() bool { return l.Parent < 0 }

// Var returns the variable name bound to the line's value.
func (l *Line) Var() string { return LineVar(l.Row) }

// LineVar returns the name of the variable bound to the value of row.
func LineVar(row int) string { return "Line" + strconv.Itoa(row) }

// Order selects how [Tree.Rows] arranges lines for presentation.
type Order int

// Presentation orders.
const (
	// PostOrder emits each line after all of its descendants.
	PostOrder Order = iota
	// PreOrder emits each line before its descendants.
	PreOrder
)

func (o Order) String() string {
	switch o {
	case PostOrder:
		return "post"
	case PreOrder:
		return "pre"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// ParseOrder returns the Order named s ("post" or "pre").
func ParseOrder(s string) (Order, bool) {
	switch s {
	case "post", "":
		return PostOrder, true
	case "pre":
		return PreOrder, true
	default:
		return PostOrder, false
	}
}

// RootSource is the source text of the synthetic root line.
const RootSource = "Total"

// Tree is an arena of lines. The root is always at index 0.
type Tree struct {
	lines []Line
}

func newTree() *Tree {
	return &Tree{
		lines: []Line{{
			Source:   RootSource,
			Trailing: RootSource,
			Indent:   -1,
			Parent:   -1,
		}},
	}
}

// Root returns the arena index of the root line.
func (t *Tree) Root() int { return 0 }

// Len returns the number of lines, including the root.
func (t *Tree) Len() int { return len(t.lines) }

// Line returns the line at arena index i.
func (t *Tree) Line(i int) *Line { return &t.lines[i] }

// Total returns the root's result.
func (t *Tree) Total() float64 { return t.lines[0].Result }

// Lines iterates the lines in insertion order, root first.
func (t *Tree) Lines() iter.Seq2[int, *Line] {
	return func(yield func(int, *Line) bool) {
		for i := range t.lines {
			if !yield(i, &t.lines[i]) {
				return
			}
		}
	}
}

// Depth returns the nesting depth of line i. Top-level lines and the root
// have depth 0.
func (t *Tree) Depth(i int) int {
	depth := 0

	for p := t.lines[i].Parent; p > 0; p = t.lines[p].Parent {
		depth++
	}

	return depth
}

// Rows iterates arena indices in presentation order.
//
// The root row comes last. It is omitted when the root has exactly one
// child, since that child's result already is the total.
func (t *Tree) Rows(order Order) iter.Seq[int] {
	return func(yield func(int) bool) {
		root := &t.lines[0]

		for _, child := range root.Children {
			if !t.walk(child, order, yield) {
				return
			}
		}

		if len(root.Children) != 1 {
			yield(0)
		}
	}
}

func (t *Tree) walk(i int, order Order, yield func(int) bool) bool {
	if order == PreOrder && !yield(i) {
		return false
	}

	for _, child := range t.lines[i].Children {
		if !t.walk(child, order, yield) {
			return false
		}
	}

	if order == PostOrder {
		return yield(i)
	}

	return true
}

// add appends l as the last child of parent and returns its index.
func (t *Tree) add(parent int, l Line) int {
	i := len(t.lines)

	l.Parent = parent
	t.lines = append(t.lines, l)
	t.lines[parent].Children = append(t.lines[parent].Children, i)

	return i
}
