// Package judge decides whether one line of player input solves a round.
package judge

import (
	"fmt"
	"math/big"

	"dicegame/pkg/expr"
)

// HistogramError reports an answer that does not use the dealt numbers
// exactly once each.
type HistogramError struct {
	Expected expr.Multiset
	Actual   expr.Multiset
}

func (e *HistogramError) Error() string {
	return fmt.Sprintf("incorrect histogram: expected %s, got %s", e.Expected, e.Actual)
}

// ValueError reports an answer that evaluates to something other than the
// target.
type ValueError struct {
	Expected *big.Rat
	Actual   *big.Rat
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("incorrect value: expected %s, got %s", e.Expected.RatString(), e.Actual.RatString())
}

// Judge holds what one round expects: the dealt numbers and the target.
// It is immutable and safe to share between goroutines.
type Judge struct {
	hand     []uint32
	expected expr.Multiset
	target   *big.Rat
}

// New returns a Judge for hand. A nil target means 1.
func New(hand []uint32, target *big.Rat) *Judge {
	if target == nil {
		target = big.NewRat(1, 1)
	}
	return &Judge{
		hand:     append([]uint32(nil), hand...),
		expected: expr.NewMultiset(hand...),
		target:   new(big.Rat).Set(target),
	}
}

// Hand returns a copy of the dealt numbers in deal order.
func (j *Judge) Hand() []uint32 { return append([]uint32(nil), j.hand...) }

// Target returns a copy of the target value.
func (j *Judge) Target() *big.Rat { return new(big.Rat).Set(j.target) }

// Expected returns the histogram every answer must match.
func (j *Judge) Expected() expr.Multiset {
	m := make(expr.Multiset, len(j.expected))
	for k, v := range j.expected {
		m[k] = v
	}
	return m
}

// Check returns nil when line is a correct answer. Otherwise it returns the
// first failure: a *expr.LexError, a *expr.ParseError, a *HistogramError,
// expr.ErrDivisionByZero or a *ValueError, in that order of checking.
func (j *Judge) Check(line string) error {
	_, err := j.evaluate(line)
	return err
}

func (j *Judge) evaluate(line string) (*big.Rat, error) {
	tree, err := expr.ParseString(line)
	if err != nil {
		return nil, err
	}

	actual := expr.LiteralMultiset(tree)
	if !actual.Equal(j.expected) {
		return nil, &HistogramError{Expected: j.Expected(), Actual: actual}
	}

	value, err := expr.Evaluate(tree)
	if err != nil {
		return nil, err
	}
	if value.Cmp(j.target) != 0 {
		return value, &ValueError{Expected: j.Target(), Actual: value}
	}
	return value, nil
}
