package expr

import (
	"math"
	"unicode"
)

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanNumber accumulates a run of ASCII digits into a uint32. Both the
// multiply and the add are checked; the first overflow aborts the scan.
// The first digit must still be at l.peek().
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	acc := uint32(l.advance() - '0')
	for l.pos < len(l.src) && isDigit(l.peek()) {
		if acc > math.MaxUint32/10 {
			return Token{}, &LexError{Kind: NumberTooLarge, Pos: start}
		}
		acc *= 10
		d := uint32(l.advance() - '0')
		if acc > math.MaxUint32-d {
			return Token{}, &LexError{Kind: NumberTooLarge, Pos: start}
		}
		acc += d
	}
	return Token{Type: NUMBER, Num: acc, Pos: start}, nil
}

// nextToken skips whitespace and returns the next Token. ok is false once
// the input is exhausted.
func (l *Lexer) nextToken() (tok Token, ok bool, err error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{}, false, nil
	}

	ch := l.peek()
	pos := l.pos

	if isDigit(ch) {
		tok, err := l.scanNumber()
		return tok, err == nil, err
	}

	l.advance()
	switch ch {
	case '(':
		return Token{Type: LPAREN, Pos: pos}, true, nil
	case ')':
		return Token{Type: RPAREN, Pos: pos}, true, nil
	case '+':
		return Token{Type: OPERATOR, Op: Add, Pos: pos}, true, nil
	case '-':
		return Token{Type: OPERATOR, Op: Sub, Pos: pos}, true, nil
	case '*':
		return Token{Type: OPERATOR, Op: Mul, Pos: pos}, true, nil
	case '/':
		return Token{Type: OPERATOR, Op: Div, Pos: pos}, true, nil
	default:
		return Token{}, false, &LexError{Kind: UnknownToken, Char: ch, Pos: pos}
	}
}

// Lex tokenises one line of player input. There is no EOF token; the
// returned slice simply ends. On the first illegal rune or oversized
// literal it returns a *LexError and no tokens.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, ok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
