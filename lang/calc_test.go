package lang

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
)

func TestEval_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "precedence", input: "2 + 3 * 4", want: 14},
		{name: "grouping", input: "(2 + 3) * 4", want: 20},
		{name: "nested negation", input: "- - 5", want: 5},
		{name: "clamp above", input: "clamp(15, 0, 10)", want: 10},
		{name: "clamp below", input: "clamp(-5, 0, 10)", want: 0},
		{name: "clamp inside", input: "clamp(7, 0, 10)", want: 7},
		{name: "abs", input: "abs(-2.5)", want: 2.5},
		{name: "round", input: "round(2.5)", want: 3},
		{name: "sqrt", input: "sqrt(16)", want: 4},
		{name: "min", input: "min(4, -1, 3)", want: -1},
		{name: "max single", input: "max(9)", want: 9},
		{name: "unbound variable", input: "missing", want: 0},
		{name: "trailing expression", input: "Groceries for the week 85 + 12", want: 97},
		{name: "currency", input: "Rent $1200", want: 1200},
		{name: "numeric string coerces", input: "'12' * 2", want: 24},
		{name: "text string coerces to zero", input: "'abc' * 2", want: 0},
		{name: "no expression", input: "just words.", want: 0},
		{name: "missing paren", input: "(2 + 3", want: 0},
		{name: "missing paren after label", input: "Total (2 + 3", want: 0},
		{name: "trailing text ignored", input: "2 apples", want: 2},
		{name: "empty", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input, NewVars())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.IsString() || got.Float() != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEval_DivisionByZero(t *testing.T) {
	vars := NewVars()

	if got, _ := Eval("1 / 0", vars); !math.IsInf(got.Float(), 1) {
		t.Errorf("1 / 0 = %v, want +Inf", got)
	}

	if got, _ := Eval("0 / 0", vars); !math.IsNaN(got.Float()) {
		t.Errorf("0 / 0 = %v, want NaN", got)
	}
}

func TestEval_Concatenation(t *testing.T) {
	got, err := Eval("'total: ' + 2 + 3", NewVars())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.IsString() || got.Str() != "total: 23" {
		t.Errorf("got %v, want %q", got, "total: 23")
	}
}

func TestEval_Variables(t *testing.T) {
	vars := NewVars()

	got, err := Eval("x = 10", vars)
	if err != nil || got.Float() != 10 {
		t.Fatalf("x = 10 gave %v, %v", got, err)
	}

	if got, _ := Eval("x + 5", vars); got.Float() != 15 {
		t.Errorf("x + 5 = %v, want 15", got)
	}

	if got, _ := Eval("Fuel: x * 2", vars); got.Float() != 20 {
		t.Errorf("Fuel: x * 2 = %v, want 20", got)
	}

	if v, ok := vars.Lookup("Fuel"); !ok || v != 20 {
		t.Errorf("Fuel = %v, %v", v, ok)
	}

	if got, _ := Eval("y = 4 apples", vars); got.Float() != 4 {
		t.Errorf("y = 4 apples = %v, want 4", got)
	}

	if v, ok := vars.Lookup("y"); !ok || v != 4 {
		t.Errorf("y = %v, %v, want 4 bound", v, ok)
	}

	if got, _ := Eval("X + 1", vars); got.Float() != 1 {
		t.Errorf("names are case-sensitive: X + 1 = %v", got)
	}
}

func TestEval_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		message  string
	}{
		{
			name:     "unknown function",
			input:    "foo(1)",
			sentinel: ErrUnknownFunction,
			message:  `unknown function "foo"`,
		},
		{
			name:     "too few arguments",
			input:    "sin()",
			sentinel: ErrArity,
			message:  `function "sin" expects 1 argument, got 0`,
		},
		{
			name:     "clamp arity",
			input:    "clamp(1)",
			sentinel: ErrArity,
			message:  `function "clamp" expects 3 arguments, got 1`,
		},
		{
			name:     "variadic arity",
			input:    "min()",
			sentinel: ErrArity,
			message:  `function "min" expects 1 or more arguments, got 0`,
		},
		{
			name:     "lexical error",
			input:    "'abc",
			sentinel: ErrUnterminatedString,
			message:  "unterminated string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input, NewVars())
			if got.Float() != 0 {
				t.Errorf("value = %v, want 0", got)
			}

			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("error = %v, want %v", err, tt.sentinel)
			}

			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestCalc_ErrResets(t *testing.T) {
	calc := NewCalc(NewVars())

	calc.Exec(Parse(mustScan(t, "nope(2)")))

	if calc.Err() == nil {
		t.Fatal("expected diagnostic")
	}

	if got := calc.Exec(Parse(mustScan(t, "2 * 2"))); got.Float() != 4 {
		t.Errorf("got %v, want 4", got)
	}

	if err := calc.Err(); err != nil {
		t.Errorf("Err() = %v after a clean run", err)
	}

	if got := calc.Exec(nil); got.Float() != 0 {
		t.Errorf("Exec(nil) = %v", got)
	}
}

// TestEval_MatchesExpr cross-checks arithmetic against expr-lang.
func TestEval_MatchesExpr(t *testing.T) {
	inputs := []string{
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"10 - 4 - 3",
		"7 / 2",
		"2 * -3",
		"1.5 + 2.25 * 4",
		"100 / 8 / 5",
		"-(4 - 9) * 2",
		"((1 + 2) * (3 + 4)) / 3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ref, err := expr.Eval(input, nil)
			if err != nil {
				t.Fatalf("expr: %v", err)
			}

			var want float64

			switch v := ref.(type) {
			case int:
				want = float64(v)
			case float64:
				want = v
			default:
				t.Fatalf("expr result %T", ref)
			}

			got, err := Eval(input, NewVars())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(got.Float()-want) > 1e-12 {
				t.Errorf("Eval(%q) = %v, expr = %v", input, got.Float(), want)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	names := Builtins()
	if len(names) != len(builtins) || names[0] != "abs" {
		t.Errorf("Builtins() = %v", names)
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"sqrt", "x", true},
		{"clamp", "x,lo,hi", true},
		{"max", "...x", true},
		{"nope", "", false},
	}

	for _, tt := range tests {
		got, ok := Params(tt.name)
		if ok != tt.ok || strings.Join(got, ",") != tt.want {
			t.Errorf("Params(%q) = %v, %v", tt.name, got, ok)
		}
	}

	for _, name := range Builtins() {
		params, _ := Params(name)
		if fn := builtins[name]; fn.arity >= 0 && len(params) != fn.arity {
			t.Errorf("%s: %d params, arity %d", name, len(params), fn.arity)
		}
	}
}
