package expr

import (
	"math"
	"sync"
)

// Shared canonical constants. Rewrite rules return these so common values
// can be recognized by identity before falling back to value comparison.
// They are ordinary ConstNodes semantically; per-call construction of the
// same values is equally valid.
var (
	Zero     = &ConstNode{Val: 0}
	One      = &ConstNode{Val: 1}
	Two      = &ConstNode{Val: 2}
	Three    = &ConstNode{Val: 3}
	MinusOne = &ConstNode{Val: -1}
	E        = &ConstNode{Val: math.E}
	Pi       = &ConstNode{Val: math.Pi}
)

var (
	ln2Once sync.Once
	ln2Node *ConstNode
)

// lnTwo returns the shared ln(2) constant, computed once per process.
func lnTwo() *ConstNode {
	ln2Once.Do(func() {
		ln2Node = &ConstNode{Val: math.Log(2)}
	})
	return ln2Node
}

// constOf returns the shared node for canonical small constants and a
// fresh ConstNode otherwise.
func constOf(v float64) *ConstNode {
	switch v {
	case 0:
		return Zero
	case 1:
		return One
	case 2:
		return Two
	case 3:
		return Three
	case -1:
		return MinusOne
	case math.E:
		return E
	case math.Pi:
		return Pi
	}
	return &ConstNode{Val: v}
}

// isConst reports whether e is a constant leaf with exactly the value v.
func isConst(e ExprNode, v float64) bool {
	c, ok := e.(*ConstNode)
	return ok && c.Val == v
}
