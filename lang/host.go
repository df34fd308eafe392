package lang

import (
	"iter"
	"maps"
	"math"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Host owns the variable namespace of an evaluation pass and formats numbers
// for display.
type Host interface {
	SetVar(name string, value float64)
	// Var returns the value bound to name, or 0 if it is unbound.
	Var(name string) float64
	Format(value float64) string
}

// maxFractionDigits limits the fraction digits shown by [Vars.Format].
const maxFractionDigits = 3

// Vars is the default [Host]: a flat map from case-sensitive variable name
// to value. It is not safe for concurrent use.
type Vars struct {
	vars     map[string]float64
	printer  *message.Printer
	tag      language.Tag
	grouping bool
}

// VarsOption configures a [Vars].
type VarsOption func(*Vars)

// WithGrouping enables or disables digit grouping in [Vars.Format].
// Grouping is enabled by default.
func WithGrouping(enable bool) VarsOption {
	return func(v *Vars) { v.grouping = enable }
}

// WithLocale selects the locale used by [Vars.Format]. The default is
// [language.AmericanEnglish].
func WithLocale(tag language.Tag) VarsOption {
	return func(v *Vars) { v.tag = tag }
}

// NewVars returns an empty variable store.
func NewVars(opts ...VarsOption) *Vars {
	v := &Vars{
		vars:     make(map[string]float64),
		tag:      language.AmericanEnglish,
		grouping: true,
	}

	for _, opt := range opts {
		opt(v)
	}

	v.printer = message.NewPrinter(v.tag)

	return v
}

// SetVar binds name to value, replacing any previous binding.
func (v *Vars) SetVar(name string, value float64) {
	v.vars[name] = value
}

// Var returns the value bound to name, or 0.
func (v *Vars) Var(name string) float64 {
	return v.vars[name]
}

// Lookup returns the value bound to name and whether it is bound.
func (v *Vars) Lookup(name string) (float64, bool) {
	f, ok := v.vars[name]

	return f, ok
}

// Reset removes every binding.
func (v *Vars) Reset() {
	clear(v.vars)
}

// Len returns the number of bound variables.
func (v *Vars) Len() int { return len(v.vars) }

// Names returns the bound variable names in sorted order.
func (v *Vars) Names() []string {
	return slices.Sorted(maps.Keys(v.vars))
}

// All iterates the bindings in sorted name order.
func (v *Vars) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, name := range v.Names() {
			if !yield(name, v.vars[name]) {
				return
			}
		}
	}
}

// Format renders value for display in the store's locale with at most three
// fraction digits.
func (v *Vars) Format(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "∞"
	case math.IsInf(value, -1):
		return "-∞"
	}

	opts := []number.Option{number.MaxFractionDigits(maxFractionDigits)}
	if !v.grouping {
		opts = append(opts, number.NoSeparator())
	}

	return v.printer.Sprint(number.Decimal(value, opts...))
}
