package lang

import (
	"strconv"
	"strings"
)

// Node is an expression tree node. The concrete types are [*Literal],
// [*VarRef], [*Unary], [*Binary], [*Assign] and [*Call].
type Node interface {
	// Pos returns the index of the token the node was built from.
	Pos() int
	String() string
	node()
}

// Literal is a Number or String constant.
type Literal struct {
	Value Value
	At    int
}

// VarRef is a reference to a variable.
type VarRef struct {
	Name string
	At   int
}

// Unary is a prefix operation. Op is always [Minus].
type Unary struct {
	Op      TokenKind
	Operand Node
	At      int
}

// Binary is an infix arithmetic operation.
type Binary struct {
	Op    TokenKind
	Left  Node
	Right Node
	At    int
}

// Assign binds the value of an expression to a variable.
// Op is [Equal] or [Colon].
type Assign struct {
	Name  string
	Op    TokenKind
	Value Node
	At    int
}

// Call invokes a built-in function.
type Call struct {
	Name string
	Args []Node
	At   int
}

func (n *Literal) Pos() int { return n.At }
func (n *VarRef) Pos() int  { return n.At }
func (n *Unary) Pos() int   { return n.At }
func (n *Binary) Pos() int  { return n.At }
func (n *Assign) Pos() int  { return n.At }
func (n *Call) Pos() int    { return n.At }

func (*Literal) node() {}
func (*VarRef) node()  {}
func (*Unary) node()   {}
func (*Binary) node()  {}
func (*Assign) node()  {}
func (*Call) node()    {}

// String renders the node as a fully parenthesized expression.
func (n *Literal) String() string {
	if n.Value.IsString() {
		return "'" + n.Value.Str() + "'"
	}

	return strconv.FormatFloat(n.Value.Float(), 'g', -1, 64)
}

func (n *VarRef) String() string { return n.Name }

func (n *Unary) String() string {
	return "(" + opSymbol(n.Op) + n.Operand.String() + ")"
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + opSymbol(n.Op) + " " + n.Right.String() + ")"
}

func (n *Assign) String() string {
	return n.Name + " " + opSymbol(n.Op) + " " + n.Value.String()
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.String()
	}

	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func opSymbol(k TokenKind) string {
	for r, kind := range punctuators {
		if kind == k {
			return string(r)
		}
	}

	return k.String()
}
