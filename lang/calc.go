package lang

import (
	"log/slog"
	"math"
	"slices"
	"strconv"
)

// Calc evaluates expression trees against a [Host].
//
// Evaluation never fails: unbound variables read as 0, a nil node evaluates
// to 0, and calls that cannot be made evaluate to 0 with an advisory
// diagnostic available from [Calc.Err].
type Calc struct {
	host Host
	err  *Error
}

// NewCalc returns a Calc that reads and writes variables through host.
func NewCalc(host Host) *Calc {
	return &Calc{host: host}
}

// Exec evaluates node. Assignments bind their value in the host before Exec
// returns.
func (c *Calc) Exec(node Node) Value {
	c.err = nil

	return c.eval(node)
}

// Err returns the last diagnostic recorded by the most recent call to
// [Calc.Exec], or nil.
func (c *Calc) Err() error {
	if c.err == nil {
		return nil
	}

	return c.err
}

func (c *Calc) eval(node Node) Value {
	switch n := node.(type) {
	case nil:
		return Value{}

	case *Literal:
		return n.Value

	case *VarRef:
		return NumberValue(c.host.Var(n.Name))

	case *Unary:
		return NumberValue(-c.eval(n.Operand).Float())

	case *Binary:
		return c.binary(n)

	case *Assign:
		v := c.eval(n.Value)
		c.host.SetVar(n.Name, v.Float())

		return v

	case *Call:
		return c.call(n)

	default:
		return Value{}
	}
}

func (c *Calc) binary(n *Binary) Value {
	left, right := c.eval(n.Left), c.eval(n.Right)

	switch n.Op {
	case Plus:
		if left.IsString() || right.IsString() {
			return StringValue(left.Str() + right.Str())
		}

		return NumberValue(left.Float() + right.Float())

	case Minus:
		return NumberValue(left.Float() - right.Float())

	case Star:
		return NumberValue(left.Float() * right.Float())

	case Slash:
		return NumberValue(left.Float() / right.Float())

	default:
		return Value{}
	}
}

func (c *Calc) call(n *Call) Value {
	fn, ok := builtins[n.Name]
	if !ok {
		c.err = ErrUnknownFunction.
			Detail(`unknown function "` + n.Name + `"`).
			With(slog.String("function", n.Name))

		return Value{}
	}

	if !fn.accepts(len(n.Args)) {
		c.err = ErrArity.
			Detail(fn.arityMessage(n.Name, len(n.Args))).
			With(
				slog.String("function", n.Name),
				slog.Int("args", len(n.Args)),
			)

		return Value{}
	}

	args := make([]float64, len(n.Args))
	for i, arg := range n.Args {
		args[i] = c.eval(arg).Float()
	}

	return NumberValue(fn.call(args))
}

// builtin is an entry in the function table. A negative arity means the
// function takes one or more arguments.
type builtin struct {
	call   func(args []float64) float64
	params []string
	arity  int
}

func (b builtin) accepts(n int) bool {
	if b.arity < 0 {
		return n > 0
	}

	return n == b.arity
}

func (b builtin) arityMessage(name string, got int) string {
	want := "1 or more arguments"

	switch {
	case b.arity == 1:
		want = "1 argument"
	case b.arity > 1:
		want = strconv.Itoa(b.arity) + " arguments"
	}

	return `function "` + name + `" expects ` + want + ", got " + strconv.Itoa(got)
}

func unary(f func(float64) float64) builtin {
	return builtin{
		arity:  1,
		params: []string{"x"},
		call:   func(a []float64) float64 { return f(a[0]) },
	}
}

func variadic(f func([]float64) float64) builtin {
	return builtin{arity: -1, params: []string{"...x"}, call: f}
}

//nolint:gochecknoglobals
var builtins = map[string]builtin{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"abs":   unary(math.Abs),
	"sqrt":  unary(math.Sqrt),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"round": unary(math.Round),
	"clamp": {
		arity:  3,
		params: []string{"x", "lo", "hi"},
		call: func(a []float64) float64 {
			return math.Min(math.Max(a[0], a[1]), a[2])
		},
	},
	"min": variadic(slices.Min[[]float64]),
	"max": variadic(slices.Max[[]float64]),
}

// Builtins returns the names of the built-in functions in sorted order.
func Builtins() []string {
	return sortedKeys(builtins)
}

// Params returns the parameter names of the built-in function name. A
// variadic parameter is prefixed with "...".
func Params(name string) ([]string, bool) {
	fn, ok := builtins[name]
	if !ok {
		return nil, false
	}

	return slices.Clone(fn.params), true
}

// Eval scans, parses and evaluates one line against host.
//
// The returned error is advisory: the lexical error of the line if there is
// one, otherwise the evaluation diagnostic. The value is always usable.
func Eval(line string, host Host) (Value, error) {
	tokens, scanErr := Scan(line)

	calc := NewCalc(host)
	value := calc.Exec(Parse(tokens))

	if scanErr != nil {
		return value, scanErr
	}

	return value, calc.Err()
}
