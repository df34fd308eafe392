package lang

import "slices"

// Parse returns the expression that starts the tokenized line, or nil if no
// expression matches there. Tokens after the expression are ignored, and a
// production that fails, such as a '(' without its ')', fails the line.
//
// Leading words are free text: while the expression at the current token is
// a bare identifier followed by more tokens, that identifier is taken as a
// label and parsing starts again at the next token. Only identifiers are
// skipped, so "Rent 1200" parses as 1200 and "Rent (12" as nothing.
func Parse(tokens []Token) Node {
	p := parser{tokens: terminate(tokens)}

	for start := 0; ; start++ {
		node, next, ok := p.expression(start)
		if !ok {
			return nil
		}

		_, ref := node.(*VarRef)
		if !ref || next != start+1 || p.kind(next) == End {
			return node
		}
	}
}

// ParseAt matches a single expression production beginning at token index
// start. It returns the node and the index of the first token after it.
// ok is false, and next equals start, when no expression matches there.
func ParseAt(tokens []Token, start int) (node Node, next int, ok bool) {
	p := parser{tokens: terminate(tokens)}

	node, next, ok = p.expression(start)
	if !ok {
		return nil, start, false
	}

	return node, next, true
}

// terminate guarantees that the token slice ends with an End token.
func terminate(tokens []Token) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == End {
		return tokens
	}

	return append(tokens[:len(tokens):len(tokens)], Token{Kind: End})
}

// parser is a backtracking recursive descent parser. It has no cursor: every
// production receives the index to start at and returns the index following
// its match, so a failed alternative leaves nothing to undo.
type parser struct {
	tokens []Token
}

func (p *parser) kind(i int) TokenKind {
	if i < 0 || i >= len(p.tokens) {
		return End
	}

	return p.tokens[i].Kind
}

func (p *parser) token(i int) Token {
	if i < 0 || i >= len(p.tokens) {
		return Token{Kind: End}
	}

	return p.tokens[i]
}

// expression → statement.
func (p *parser) expression(i int) (Node, int, bool) {
	return p.statement(i)
}

// statement → call | Identifier ('=' | ':') term | term.
//
// A call is matched by term through primary, so only the assignment needs
// its own alternative. It is tried first.
func (p *parser) statement(i int) (Node, int, bool) {
	if node, next, ok := p.assignment(i); ok {
		return node, next, true
	}

	return p.term(i)
}

func (p *parser) assignment(i int) (Node, int, bool) {
	if p.kind(i) != Identifier {
		return nil, i, false
	}

	op := p.kind(i + 1)
	if op != Equal && op != Colon {
		return nil, i, false
	}

	value, next, ok := p.term(i + 2)
	if !ok {
		return nil, i, false
	}

	return &Assign{
		Name:  p.token(i).Lexeme,
		Op:    op,
		Value: value,
		At:    i + 1,
	}, next, true
}

// term → factor (('+' | '-') factor)*.
func (p *parser) term(i int) (Node, int, bool) {
	return p.binary(i, p.factor, Plus, Minus)
}

// factor → unary (('*' | '/') unary)*.
func (p *parser) factor(i int) (Node, int, bool) {
	return p.binary(i, p.unary, Star, Slash)
}

// binary matches a left-associative chain of operand productions joined by
// any of the given operators.
func (p *parser) binary(
	i int,
	operand func(int) (Node, int, bool),
	ops ...TokenKind,
) (Node, int, bool) {
	left, next, ok := operand(i)
	if !ok {
		return nil, i, false
	}

	for {
		op := p.kind(next)
		if !slices.Contains(ops, op) {
			return left, next, true
		}

		right, after, ok := operand(next + 1)
		if !ok {
			// The operator is left for the caller; the chain so far stands.
			return left, next, true
		}

		left = &Binary{Op: op, Left: left, Right: right, At: next}
		next = after
	}
}

// unary → '-' unary | primary.
func (p *parser) unary(i int) (Node, int, bool) {
	if p.kind(i) == Minus {
		operand, next, ok := p.unary(i + 1)
		if !ok {
			return nil, i, false
		}

		return &Unary{Op: Minus, Operand: operand, At: i}, next, true
	}

	return p.primary(i)
}

// primary → call | Number | String | Identifier | '(' expression ')'.
func (p *parser) primary(i int) (Node, int, bool) {
	if node, next, ok := p.call(i); ok {
		return node, next, true
	}

	tok := p.token(i)

	switch tok.Kind {
	case Number:
		value, _ := tok.Literal.(float64)

		return &Literal{Value: NumberValue(value), At: i}, i + 1, true

	case String:
		value, _ := tok.Literal.(string)

		return &Literal{Value: StringValue(value), At: i}, i + 1, true

	case Identifier:
		return &VarRef{Name: tok.Lexeme, At: i}, i + 1, true

	case LeftParen:
		inner, next, ok := p.expression(i + 1)
		if !ok || p.kind(next) != RightParen {
			return nil, i, false
		}

		return inner, next + 1, true

	default:
		return nil, i, false
	}
}

// call → Identifier '(' arguments? ')'.
func (p *parser) call(i int) (Node, int, bool) {
	if p.kind(i) != Identifier || p.kind(i+1) != LeftParen {
		return nil, i, false
	}

	args, next, ok := p.arguments(i + 2)
	if !ok || p.kind(next) != RightParen {
		return nil, i, false
	}

	return &Call{Name: p.token(i).Lexeme, Args: args, At: i}, next + 1, true
}

// arguments → expression (',' expression)*. An empty list matches.
func (p *parser) arguments(i int) ([]Node, int, bool) {
	if p.kind(i) == RightParen {
		return nil, i, true
	}

	first, next, ok := p.expression(i)
	if !ok {
		return nil, i, false
	}

	args := []Node{first}

	for p.kind(next) == Comma {
		arg, after, ok := p.expression(next + 1)
		if !ok {
			return nil, i, false
		}

		args = append(args, arg)
		next = after
	}

	return args, next, true
}
