// Package lang implements the expression language evaluated on every line of
// an outline document.
//
// A line is an optional label of plain words followed by an arithmetic
// expression. The package scans the line into tokens, parses the expression
// that starts after the label, and evaluates it against a [Host] that owns
// the variable namespace. Tokens after the expression are ignored.
//
// # Grammar
//
// Informal EBNF, highest to lowest binding:
//
//	primary    → call | Number | String | Identifier | '(' expression ')'
//	unary      → '-' unary | primary
//	factor     → unary (('*' | '/') unary)*
//	term       → factor (('+' | '-') factor)*
//	call       → Identifier '(' arguments? ')'
//	arguments  → expression (',' expression)*
//	statement  → call | Identifier ('=' | ':') term | expression
//	expression → statement
//
// # Example
//
//	Rent          1200$
//	rate = 0.2
//	Tax           Line1 * rate
//	Fuel:         clamp(fuel_est, 50, 150)
//
// Identifiers are never reserved. Unbound identifiers evaluate to 0. Every
// failure degrades to a numeric default: lexical errors and evaluation
// diagnostics are returned as advisory errors alongside the value, never in
// place of it.
//
// # Built-in functions
//
// sin, cos, tan, asin, acos, atan, abs, sqrt, floor, ceil and round take one
// argument. clamp(value, min, max) takes three. min and max take one or more.
package lang
