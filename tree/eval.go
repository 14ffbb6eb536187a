package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strconv"

	"github.com/npillmayer/exprtree"
)

// Eval evaluates a tree numerically. Operand leaves are parsed as
// floating-point numbers; an operand which does not parse — a variable
// name, say — fails evaluation with a NonNumericError. Operator nodes apply
// their arithmetic operation to the evaluated subtrees (see
// exprtree.Operator.Apply for the numeric semantics of / and ^).
//
// An empty tree evaluates to 0.
func (t *Tree) Eval() (float64, error) {
	if t == nil {
		return 0, nil
	}
	return t.eval(t.root)
}

func (t *Tree) eval(ref NodeRef) (float64, error) {
	if ref == nullRef {
		return 0, nil
	}
	n := t.nodes[ref]
	if op, ok := exprtree.OperatorFor(n.token); ok {
		left, err := t.eval(n.left)
		if err != nil {
			return 0, err
		}
		right, err := t.eval(n.right)
		if err != nil {
			return 0, err
		}
		return op.Apply(left, right), nil
	}
	if n.token.IsOperand() {
		v, err := strconv.ParseFloat(string(n.token), 64)
		if err != nil {
			return 0, &exprtree.NonNumericError{Token: n.token}
		}
		return v, nil
	}
	// unreachable for trees built by this package
	return 0, &exprtree.CorruptTreeError{Token: n.token}
}
