package expr

// Parser consumes the flat token slice produced by Lex and builds a tree.
//
// There is no grammar table. Each nesting level is first flattened into an
// alternating run of operands and operators:
//
//	level   = operand (operator operand)*
//	operand = NUMBER | "(" level ")"
//
// and the run is then rooted at its rightmost operator of lowest
// precedence. Splitting at the rightmost one makes equal-precedence chains
// left-associative: 2 - 3 + 5 roots at "+", leaving 2 - 3 on the left.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// item is one element of a flattened level: an operand when expr is
// non-nil, otherwise an operator.
type item struct {
	expr Expr
	op   Operator
}

func (it item) isOperator() bool { return it.expr == nil }

// atEnd reports whether every token has been consumed.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// advance consumes and returns the current token. Callers check atEnd first.
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// parseLevel parses one nesting level. When nested is true the level was
// opened by "(" and must be closed by the matching ")", which it consumes.
func (p *Parser) parseLevel(nested bool) (Expr, error) {
	run, err := p.flatten(nested)
	if err != nil {
		return nil, err
	}
	return resolve(run)
}

// flatten reads operand (operator operand)* until no operator follows.
func (p *Parser) flatten(nested bool) ([]item, error) {
	operand, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	run := []item{{expr: operand}}

	for {
		op, ok, err := p.parseOperator(nested)
		if err != nil {
			return nil, err
		}
		if !ok {
			return run, nil
		}
		operand, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		run = append(run, item{op: op}, item{expr: operand})
	}
}

// parseOperand handles a literal or a parenthesised sub-level.
func (p *Parser) parseOperand() (Expr, error) {
	if p.atEnd() {
		return nil, &ParseError{Kind: UnexpectedEnd}
	}
	tok := p.advance()
	switch tok.Type {
	case NUMBER:
		return &Literal{Value: tok.Num}, nil
	case LPAREN:
		return p.parseLevel(true)
	default:
		return nil, &ParseError{Kind: UnexpectedToken, Token: tok}
	}
}

// parseOperator consumes what follows an operand. ok is false when the
// level ends: at end of input for the top level, at ")" for a nested one.
func (p *Parser) parseOperator(nested bool) (op Operator, ok bool, err error) {
	if p.atEnd() {
		if nested {
			return 0, false, &ParseError{Kind: UnexpectedEnd}
		}
		return 0, false, nil
	}
	tok := p.advance()
	switch {
	case tok.Type == OPERATOR:
		return tok.Op, true, nil
	case tok.Type == RPAREN && nested:
		return 0, false, nil
	default:
		return 0, false, &ParseError{Kind: UnexpectedToken, Token: tok}
	}
}

// resolve roots run at its rightmost lowest-precedence operator and
// recurses into both sides. A run without operators must be exactly one
// operand.
func resolve(run []item) (Expr, error) {
	best := -1
	for i, it := range run {
		if !it.isOperator() {
			continue
		}
		if best < 0 || it.op.Precedence() <= run[best].op.Precedence() {
			best = i
		}
	}

	if best < 0 {
		if len(run) != 1 {
			return nil, &ParseError{Kind: UnexpectedStructure}
		}
		return run[0].expr, nil
	}

	left, err := resolve(run[:best])
	if err != nil {
		return nil, err
	}
	right, err := resolve(run[best+1:])
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: run[best].op, Left: left, Right: right}, nil
}

// Parse builds the expression tree for a whole token sequence. The first
// error wins and no partial tree is returned.
func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).parseLevel(false)
}

// ParseString lexes and parses src.
func ParseString(src string) (Expr, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
