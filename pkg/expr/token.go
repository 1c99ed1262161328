package expr

import (
	"fmt"
	"strconv"
)

// Operator is one of the four binary arithmetic operators.
type Operator int

const (
	Add Operator = iota + 1 // +
	Sub                     // -
	Mul                     // *
	Div                     // /
)

var operatorSymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

// Precedence returns 1 for the additive operators and 2 for the
// multiplicative ones.
func (op Operator) Precedence() int {
	switch op {
	case Mul, Div:
		return 2
	default:
		return 1
	}
}

func (op Operator) String() string {
	if op > 0 && int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	NUMBER   TokenType = iota // unsigned 32-bit decimal literal
	LPAREN                    // (
	RPAREN                    // )
	OPERATOR                  // + - * /
)

var tokenNames = [...]string{
	NUMBER:   "NUMBER",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	OPERATOR: "OPERATOR",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by Lex.
type Token struct {
	Type TokenType
	Num  uint32   // set for NUMBER
	Op   Operator // set for OPERATOR
	Pos  int      // 0-based rune offset in the input line
}

// Number, OpenParen, CloseParen and BinaryOp build position-less tokens,
// mostly for feeding Parse directly.
func Number(n uint32) Token { return Token{Type: NUMBER, Num: n} }
func OpenParen() Token { return Token{Type: LPAREN} }
func CloseParen() Token { return Token{Type: RPAREN} }
func BinaryOp(op Operator) Token { return Token{Type: OPERATOR, Op: op} }

// String renders the token as it appears in source text.
func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return strconv.FormatUint(uint64(t.Num), 10)
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case OPERATOR:
		return t.Op.String()
	}
	return t.Type.String()
}
