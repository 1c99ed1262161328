package expr

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "Only Whitespace",
			input:    " \t\r\n ",
			expected: nil,
		},
		{
			name:  "Basic Tokens",
			input: "+ - * / ( )",
			expected: []Token{
				{Type: OPERATOR, Op: Add, Pos: 0},
				{Type: OPERATOR, Op: Sub, Pos: 2},
				{Type: OPERATOR, Op: Mul, Pos: 4},
				{Type: OPERATOR, Op: Div, Pos: 6},
				{Type: LPAREN, Pos: 8},
				{Type: RPAREN, Pos: 10},
			},
		},
		{
			name:  "Unbalanced Parens Still Lex",
			input: "(34-   2) )+",
			expected: []Token{
				{Type: LPAREN, Pos: 0},
				{Type: NUMBER, Num: 34, Pos: 1},
				{Type: OPERATOR, Op: Sub, Pos: 3},
				{Type: NUMBER, Num: 2, Pos: 7},
				{Type: RPAREN, Pos: 8},
				{Type: RPAREN, Pos: 10},
				{Type: OPERATOR, Op: Add, Pos: 11},
			},
		},
		{
			name:  "No Spaces",
			input: "6+5/6",
			expected: []Token{
				{Type: NUMBER, Num: 6, Pos: 0},
				{Type: OPERATOR, Op: Add, Pos: 1},
				{Type: NUMBER, Num: 5, Pos: 2},
				{Type: OPERATOR, Op: Div, Pos: 3},
				{Type: NUMBER, Num: 6, Pos: 4},
			},
		},
		{
			name:  "Leading Zeros",
			input: "007",
			expected: []Token{
				{Type: NUMBER, Num: 7, Pos: 0},
			},
		},
		{
			name:  "Largest uint32",
			input: "4294967295",
			expected: []Token{
				{Type: NUMBER, Num: 4294967295, Pos: 0},
			},
		},
		{
			name:  "Trailing Newline",
			input: "1 * 1\n",
			expected: []Token{
				{Type: NUMBER, Num: 1, Pos: 0},
				{Type: OPERATOR, Op: Mul, Pos: 2},
				{Type: NUMBER, Num: 1, Pos: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lex(%q)\n got  %v\n want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  LexErrorKind
		char  rune
		pos   int
	}{
		{"Unknown Character", "((!?34", UnknownToken, '!', 2},
		{"Letter", "2 + x", UnknownToken, 'x', 4},
		{"Non ASCII Digit", "1 + ٣", UnknownToken, '٣', 4},
		{"Percent", "10 % 3", UnknownToken, '%', 3},
		{"Too Large", "1000000000000", NumberTooLarge, 0, 0},
		{"One Past Max", "4294967296", NumberTooLarge, 0, 0},
		{"Too Large After Operator", "1 + 99999999999", NumberTooLarge, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err == nil {
				t.Fatalf("Lex(%q) = %v, expected error", tt.input, tokens)
			}
			if tokens != nil {
				t.Errorf("expected no partial tokens, got %v", tokens)
			}
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexError, got %T", err)
			}
			if lexErr.Kind != tt.kind {
				t.Errorf("kind = %d, want %d", lexErr.Kind, tt.kind)
			}
			if tt.kind == UnknownToken && lexErr.Char != tt.char {
				t.Errorf("char = %q, want %q", lexErr.Char, tt.char)
			}
			if lexErr.Pos != tt.pos {
				t.Errorf("pos = %d, want %d", lexErr.Pos, tt.pos)
			}
		})
	}
}

func TestLexErrorMessages(t *testing.T) {
	_, err := Lex("((!?34")
	if err == nil || err.Error() != "unknown token '!' at column 3" {
		t.Errorf("unexpected message: %v", err)
	}
	_, err = Lex("1000000000000")
	if err == nil || !strings.HasPrefix(err.Error(), "number too large") {
		t.Errorf("unexpected message: %v", err)
	}
}

// TestLexRecoversLiterals checks that digit runs come back as the same
// numbers regardless of the whitespace and symbols around them.
func TestLexRecoversLiterals(t *testing.T) {
	literals := []uint32{0, 1, 6, 24, 1000, 65535, 4294967295}
	separators := []string{"+", " - ", "*(", ")/", "\t*\t"}

	var sb strings.Builder
	for i, n := range literals {
		if i > 0 {
			sb.WriteString(separators[i%len(separators)])
		}
		sb.WriteString(strconv.FormatUint(uint64(n), 10))
	}

	tokens, err := Lex(sb.String())
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}

	var got []uint32
	for _, tok := range tokens {
		if tok.Type == NUMBER {
			got = append(got, tok.Num)
		}
	}
	if !reflect.DeepEqual(got, literals) {
		t.Errorf("literals = %v, want %v", got, literals)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Number(34), "34"},
		{OpenParen(), "("},
		{CloseParen(), ")"},
		{BinaryOp(Add), "+"},
		{BinaryOp(Sub), "-"},
		{BinaryOp(Mul), "*"},
		{BinaryOp(Div), "/"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.tok.Type, got, tt.want)
		}
	}
}
