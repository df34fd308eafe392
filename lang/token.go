package lang

import "strconv"

// TokenKind classifies a [Token].
type TokenKind int

// Token kinds.
const (
	LeftParen TokenKind = iota
	RightParen
	Comma
	Dot
	Minus
	Plus
	Star
	Slash
	Semicolon
	Equal
	Colon
	Identifier
	Number
	String
	End
)

var tokenKindName = [...]string{
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Comma:      "Comma",
	Dot:        "Dot",
	Minus:      "Minus",
	Plus:       "Plus",
	Star:       "Star",
	Slash:      "Slash",
	Semicolon:  "Semicolon",
	Equal:      "Equal",
	Colon:      "Colon",
	Identifier: "Identifier",
	Number:     "Number",
	String:     "String",
	End:        "End",
}

// String returns the name of the token kind.
func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindName) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}

	return tokenKindName[k]
}

// Token is a single lexical unit of a line.
//
// Literal holds the float64 value of a Number and the unquoted text of a
// String; it is nil for every other kind.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal any
}

// String returns a compact representation for diagnostics.
func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}

	return t.Kind.String() + "(" + t.Lexeme + ")"
}

// punctuators maps single-character punctuators to their kind.
var punctuators = map[rune]TokenKind{
	'(': LeftParen,
	')': RightParen,
	',': Comma,
	'.': Dot,
	'-': Minus,
	'+': Plus,
	'*': Star,
	'/': Slash,
	';': Semicolon,
	'=': Equal,
	':': Colon,
}
