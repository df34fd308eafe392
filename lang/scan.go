package lang

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// currencyMark is consumed by the scanner without producing a token.
const currencyMark = '$'

// Scan converts one line of source text into tokens.
//
// The returned tokens always end with an [End] token, even when the line is
// malformed. The returned error is advisory: it records the last lexical
// problem found on the line ([ErrUnexpectedChar] or [ErrUnterminatedString])
// and never prevents the tokens from being parsed.
func Scan(line string) ([]Token, error) {
	s := scanner{src: line}
	s.run()

	if s.err == nil {
		return s.tokens, nil
	}

	return s.tokens, s.err
}

// scanner holds the state of a single-line scan.
type scanner struct {
	src    string
	start  int
	pos    int
	tokens []Token
	err    *Error
}

func (s *scanner) run() {
	for !s.eof() {
		s.start = s.pos

		if !s.next() {
			break
		}
	}

	s.tokens = append(s.tokens, Token{Kind: End})
}

// next scans one token starting at s.pos and reports whether scanning should
// continue.
func (s *scanner) next() bool {
	r := s.advance()

	if kind, ok := punctuators[r]; ok {
		s.emit(kind, nil)

		return true
	}

	switch {
	case r == ' ' || r == '\t' || r == '\r':
		return true

	case r == currencyMark:
		return true

	case isDigit(r):
		s.number()

		return true

	case isIdentStart(r):
		s.identifier()

		return true

	case r == '\'':
		return s.quoted()

	default:
		s.err = ErrUnexpectedChar.Detail("unexpected character '" + string(r) + "'")

		return true
	}
}

func (s *scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A fractional part needs at least one digit after the dot.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()

		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := s.src[s.start:s.pos]

	// Out-of-range literals become ±Inf.
	value, _ := strconv.ParseFloat(lexeme, 64)

	s.emit(Number, value)
}

func (s *scanner) identifier() {
	for isIdentContinue(s.peek()) {
		s.advance()
	}

	s.emit(Identifier, nil)
}

// quoted scans a single-quoted string. It reports false when the string is
// unterminated, which ends the scan of the line.
func (s *scanner) quoted() bool {
	for !s.eof() && s.peek() != '\'' {
		s.advance()
	}

	if s.eof() {
		s.err = ErrUnterminatedString.Detail("unterminated string")

		return false
	}

	s.advance() // closing quote

	s.emit(String, s.src[s.start+1:s.pos-1])

	return true
}

func (s *scanner) emit(kind TokenKind, literal any) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  s.src[s.start:s.pos],
		Literal: literal,
	})
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size

	return r
}

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])

	return r
}

func (s *scanner) peekNext() rune {
	if s.eof() {
		return 0
	}

	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if s.pos+size >= len(s.src) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.src[s.pos+size:])

	return r
}

// Character classification

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
