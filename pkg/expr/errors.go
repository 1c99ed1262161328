package expr

import (
	"errors"
	"fmt"
)

// LexErrorKind tags the reason a scan was aborted.
type LexErrorKind int

const (
	UnknownToken   LexErrorKind = iota // a rune outside digits, operators, parens and whitespace
	NumberTooLarge                     // a literal does not fit in uint32
)

// LexError is returned by Lex. Char is only meaningful for UnknownToken.
type LexError struct {
	Kind LexErrorKind
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnknownToken:
		return fmt.Sprintf("unknown token '%c' at column %d", e.Char, e.Pos+1)
	case NumberTooLarge:
		return fmt.Sprintf("number too large at column %d", e.Pos+1)
	}
	return fmt.Sprintf("lex error %d at column %d", int(e.Kind), e.Pos+1)
}

// ParseErrorKind tags the reason Parse rejected a token sequence.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnexpectedEnd
	// UnexpectedStructure means a flattened run had no operator to split on
	// and was not a single operand. Tokens from Lex never produce it.
	UnexpectedStructure
)

// ParseError is returned by Parse. Token is only meaningful for
// UnexpectedToken.
type ParseError struct {
	Kind  ParseErrorKind
	Token Token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token '%s'", e.Token)
	case UnexpectedEnd:
		return "unexpected end of input"
	case UnexpectedStructure:
		return "unexpected structure"
	}
	return fmt.Sprintf("parse error %d", int(e.Kind))
}

// ErrDivisionByZero is returned by Evaluate when a divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")
