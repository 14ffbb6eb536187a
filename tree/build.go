package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/shunt"
)

// FromPostfix builds an expression tree from a postfix token sequence.
// Operands push a leaf; an operator pops its right operand first (it was
// pushed last), then its left, and pushes the combined node.
//
// FromPostfix fails with an ArityError if an operator finds fewer than two
// pending operands, with an InvalidTokenError on a token that is neither,
// and with a MalformedError if the sequence does not reduce to one tree.
func FromPostfix(tokens []exprtree.Token) (*Tree, error) {
	t := &Tree{root: nullRef}
	stack := arraystack.New() // build stack, holds NodeRef
	for _, tok := range tokens {
		switch {
		case tok.IsOperand():
			stack.Push(t.leaf(tok))
		case tok.IsOperator():
			if stack.Size() < 2 {
				return nil, &exprtree.ArityError{Operator: tok, Notation: exprtree.Postfix}
			}
			right, _ := stack.Pop()
			left, _ := stack.Pop()
			stack.Push(t.branch(tok, left.(NodeRef), right.(NodeRef)))
		default:
			return nil, &exprtree.InvalidTokenError{Token: tok, Notation: exprtree.Postfix}
		}
	}
	return t.finish(stack, exprtree.Postfix)
}

// FromPrefix builds an expression tree from a prefix token sequence. The
// sequence is scanned in reverse, so that an operator finds its operands
// already on the stack: the first pop is the left operand, the second the
// right. Failure conditions are as for FromPostfix.
func FromPrefix(tokens []exprtree.Token) (*Tree, error) {
	t := &Tree{root: nullRef}
	stack := arraystack.New()
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		switch {
		case tok.IsOperand():
			stack.Push(t.leaf(tok))
		case tok.IsOperator():
			if stack.Size() < 2 {
				return nil, &exprtree.ArityError{Operator: tok, Notation: exprtree.Prefix}
			}
			left, _ := stack.Pop()
			right, _ := stack.Pop()
			stack.Push(t.branch(tok, left.(NodeRef), right.(NodeRef)))
		default:
			return nil, &exprtree.InvalidTokenError{Token: tok, Notation: exprtree.Prefix}
		}
	}
	return t.finish(stack, exprtree.Prefix)
}

// finish checks that construction reduced to exactly one tree and installs
// its root.
func (t *Tree) finish(stack *arraystack.Stack, notation exprtree.Notation) (*Tree, error) {
	if stack.Size() != 1 {
		return nil, &exprtree.MalformedError{Notation: notation, Pending: stack.Size()}
	}
	top, _ := stack.Pop()
	t.root = top.(NodeRef)
	tracer().Debugf("built %s tree with %d nodes", notation, len(t.nodes))
	return t, nil
}

// Build constructs a tree from a token sequence in any notation. It detects
// the notation first; infix input is converted to postfix by package shunt
// before the tree is built. The detected notation is returned alongside the
// tree, also in the error case.
func Build(tokens []exprtree.Token) (*Tree, exprtree.Notation, error) {
	notation, err := exprtree.Detect(tokens)
	if err != nil {
		return nil, notation, err
	}
	switch notation {
	case exprtree.Prefix:
		t, err := FromPrefix(tokens)
		return t, notation, err
	case exprtree.Postfix:
		t, err := FromPostfix(tokens)
		return t, notation, err
	}
	postfix, err := shunt.InfixToPostfix(tokens)
	if err != nil {
		return nil, exprtree.Infix, err
	}
	t, err := FromPostfix(postfix)
	return t, exprtree.Infix, err
}
