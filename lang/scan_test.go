package lang

import (
	"errors"
	"slices"
	"testing"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}

	return out
}

func TestScan_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "empty line",
			input: "",
			want:  []TokenKind{End},
		},
		{
			name:  "punctuators",
			input: "( ) , . - + * / ; = :",
			want: []TokenKind{
				LeftParen, RightParen, Comma, Dot, Minus, Plus,
				Star, Slash, Semicolon, Equal, Colon, End,
			},
		},
		{
			name:  "arithmetic",
			input: "(1 + 2.5) * x",
			want: []TokenKind{
				LeftParen, Number, Plus, Number, RightParen, Star, Identifier, End,
			},
		},
		{
			name:  "dot without fraction digits",
			input: "1.",
			want:  []TokenKind{Number, Dot, End},
		},
		{
			name:  "no digit separators",
			input: "1_200",
			want:  []TokenKind{Number, Identifier, End},
		},
		{
			name:  "currency marks emit nothing",
			input: "$100 + 5$",
			want:  []TokenKind{Number, Plus, Number, End},
		},
		{
			name:  "string literal",
			input: "'hi there' x",
			want:  []TokenKind{String, Identifier, End},
		},
		{
			name:  "tabs and carriage return",
			input: "\ta\t=\t1\r",
			want:  []TokenKind{Identifier, Equal, Number, End},
		},
		{
			name:  "unicode identifier",
			input: "Größe_2",
			want:  []TokenKind{Identifier, End},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := kinds(tokens); !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScan_Literals(t *testing.T) {
	tokens, err := Scan("12.75 'abc' name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, ok := tokens[0].Literal.(float64); !ok || got != 12.75 {
		t.Errorf("number literal = %v, want 12.75", tokens[0].Literal)
	}

	if got, ok := tokens[1].Literal.(string); !ok || got != "abc" {
		t.Errorf("string literal = %v, want abc", tokens[1].Literal)
	}

	if tokens[1].Lexeme != "'abc'" {
		t.Errorf("string lexeme = %q, want %q", tokens[1].Lexeme, "'abc'")
	}

	if tokens[2].Literal != nil || tokens[2].Lexeme != "name" {
		t.Errorf("identifier = %v", tokens[2])
	}
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		message  string
		want     []TokenKind
	}{
		{
			name:     "unterminated string",
			input:    "'abc",
			sentinel: ErrUnterminatedString,
			message:  "unterminated string",
			want:     []TokenKind{End},
		},
		{
			name:     "unterminated string stops scanning",
			input:    "1 + 'abc 2",
			sentinel: ErrUnterminatedString,
			message:  "unterminated string",
			want:     []TokenKind{Number, Plus, End},
		},
		{
			name:     "unexpected character continues",
			input:    "a # b",
			sentinel: ErrUnexpectedChar,
			message:  "unexpected character '#'",
			want:     []TokenKind{Identifier, Identifier, End},
		},
		{
			name:     "last error wins",
			input:    "a # b @",
			sentinel: ErrUnexpectedChar,
			message:  "unexpected character '@'",
			want:     []TokenKind{Identifier, Identifier, End},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}

			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}

			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}

			if got := kinds(tokens); !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	if got := Identifier.String(); got != "Identifier" {
		t.Errorf("Identifier.String() = %q", got)
	}

	if got := TokenKind(99).String(); got != "TokenKind(99)" {
		t.Errorf("TokenKind(99).String() = %q", got)
	}
}
