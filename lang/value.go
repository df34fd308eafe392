package lang

import (
	"math"
	"strconv"
	"strings"
)

// Value is the result of evaluating a [Node]: either a number or a string.
// The zero Value is the number 0.
type Value struct {
	num   float64
	str   string
	isStr bool
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value { return Value{num: f} }

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{str: s, isStr: true} }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.isStr }

// Str returns the string held by v, or the formatted number.
func (v Value) Str() string {
	if v.isStr {
		return v.str
	}

	return formatFloat(v.num)
}

// Float coerces v to a number. Strings that do not parse as a number
// coerce to 0.
func (v Value) Float() float64 {
	if !v.isStr {
		return v.num
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
	if err != nil {
		return 0
	}

	return f
}

// String implements fmt.Stringer. Strings are quoted.
func (v Value) String() string {
	if v.isStr {
		return strconv.Quote(v.str)
	}

	return formatFloat(v.num)
}

// MarshalJSON encodes numbers as JSON numbers when finite and everything
// else as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.isStr && !math.IsNaN(v.num) && !math.IsInf(v.num, 0) {
		return strconv.AppendFloat(nil, v.num, 'g', -1, 64), nil
	}

	return []byte(strconv.Quote(v.Str())), nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
