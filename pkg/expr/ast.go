package expr

import (
	"fmt"
	"strings"
)

// Expr is implemented by every node of an expression tree. Trees are built
// bottom-up by Parse and never mutated afterwards; each BinaryExpr owns its
// two children.
type Expr interface {
	exprNode()
	String() string
}

// Literal is one integer as the player wrote it.
//
//	(6 + 5) / 6
//	 ^  Literal{Value: 6}
type Literal struct {
	Value uint32
}

func (*Literal) exprNode()        {}
func (l *Literal) String() string { return fmt.Sprintf("%d", l.Value) }

// BinaryExpr represents Left Op Right.
//
//	2 - 3 * 5
//	  ^  BinaryExpr{Op: Sub, Left: 2, Right: BinaryExpr{Op: Mul, ...}}
type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Format renders e with only the parentheses needed to parse back to the
// same tree: a left operand is wrapped when it binds looser than its
// parent, a right operand when it binds looser or equally tight.
func Format(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr) {
	b, ok := e.(*BinaryExpr)
	if !ok {
		sb.WriteString(e.String())
		return
	}
	writeOperand(sb, b.Left, precedenceOf(b.Left) < b.Op.Precedence())
	sb.WriteString(" ")
	sb.WriteString(b.Op.String())
	sb.WriteString(" ")
	writeOperand(sb, b.Right, precedenceOf(b.Right) <= b.Op.Precedence())
}

func writeOperand(sb *strings.Builder, e Expr, paren bool) {
	if paren {
		sb.WriteString("(")
	}
	writeExpr(sb, e)
	if paren {
		sb.WriteString(")")
	}
}

// precedenceOf reports how tightly e binds; literals never need parentheses.
func precedenceOf(e Expr) int {
	if b, ok := e.(*BinaryExpr); ok {
		return b.Op.Precedence()
	}
	return 3
}

// Equal reports whether a and b have the same shape, operators and literals.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value == y.Value
	case *BinaryExpr:
		y, ok := b.(*BinaryExpr)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return a == nil && b == nil
}
