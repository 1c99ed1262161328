package expr

import (
	"fmt"
	"sort"
	"strings"
)

// Multiset maps a literal value to the number of times it occurs.
type Multiset map[uint32]uint32

// NewMultiset builds the histogram of values, e.g. the dealt dice.
func NewMultiset(values ...uint32) Multiset {
	m := make(Multiset, len(values))
	for _, v := range values {
		m[v]++
	}
	return m
}

// LiteralMultiset counts every Literal leaf of e. Interior nodes contribute
// nothing; traversal order is irrelevant.
func LiteralMultiset(e Expr) Multiset {
	m := make(Multiset)
	countLiterals(e, m)
	return m
}

func countLiterals(e Expr, m Multiset) {
	switch n := e.(type) {
	case *Literal:
		m[n.Value]++
	case *BinaryExpr:
		countLiterals(n.Left, m)
		countLiterals(n.Right, m)
	}
}

// Equal reports whether m and o hold the same values with the same counts.
func (m Multiset) Equal(o Multiset) bool {
	if len(m) != len(o) {
		return false
	}
	for k, v := range m {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Values returns the keys in ascending order.
func (m Multiset) Values() []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// String renders the multiset sorted by value, e.g. {5: 1, 6: 2}.
func (m Multiset) String() string {
	parts := make([]string, 0, len(m))
	for _, k := range m.Values() {
		parts = append(parts, fmt.Sprintf("%d: %d", k, m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
