package expr

import (
	"fmt"
	"math/big"
)

// Evaluate computes the exact value of e. Literals become n/1 and every
// operator is applied with big.Rat arithmetic, so results stay in lowest
// terms and are compared without rounding. A divisor that is exactly zero
// yields ErrDivisionByZero.
func Evaluate(e Expr) (*big.Rat, error) {
	switch n := e.(type) {
	case *Literal:
		return new(big.Rat).SetUint64(uint64(n.Value)), nil

	case *BinaryExpr:
		left, err := Evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return nil, err
		}

		switch n.Op {
		case Add:
			return new(big.Rat).Add(left, right), nil
		case Sub:
			return new(big.Rat).Sub(left, right), nil
		case Mul:
			return new(big.Rat).Mul(left, right), nil
		case Div:
			if right.Sign() == 0 {
				return nil, ErrDivisionByZero
			}
			return new(big.Rat).Quo(left, right), nil
		}
		return nil, fmt.Errorf("unknown operator %s", n.Op)
	}
	return nil, fmt.Errorf("cannot evaluate %T", e)
}
