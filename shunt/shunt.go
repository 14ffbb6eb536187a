package shunt

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/exprtree"
)

const ( // parentheses never reach the output
	lparen = exprtree.Token("(")
	rparen = exprtree.Token(")")
)

// InfixToPostfix converts an infix token sequence to postfix. The input may
// contain operands, operators and balanced parentheses; any other token
// fails the conversion with an InvalidTokenError, unbalanced parentheses
// fail it with a ParenError.
//
// The conversion preserves precedence and associativity: rebuilding the
// postfix output into a tree groups operands exactly as the infix input
// prescribed.
func InfixToPostfix(tokens []exprtree.Token) ([]exprtree.Token, error) {
	output := make([]exprtree.Token, 0, len(tokens))
	stack := arraystack.New() // operator stack, holds exprtree.Token
	for _, t := range tokens {
		switch {
		case t.IsOperand():
			output = append(output, t)
		case t.IsOperator():
			op, _ := exprtree.OperatorFor(t)
			for {
				top, ok := stack.Peek()
				if !ok || top.(exprtree.Token) == lparen {
					break
				}
				if !yields(op, top.(exprtree.Token)) {
					break
				}
				stack.Pop()
				output = append(output, top.(exprtree.Token))
			}
			stack.Push(t)
		case t == lparen:
			stack.Push(t)
		case t == rparen:
			opening := false
			for {
				top, ok := stack.Pop()
				if !ok {
					break
				}
				if top.(exprtree.Token) == lparen {
					opening = true
					break
				}
				output = append(output, top.(exprtree.Token))
			}
			if !opening {
				return nil, &exprtree.ParenError{Paren: t}
			}
		default:
			return nil, &exprtree.InvalidTokenError{Token: t, Notation: exprtree.Infix}
		}
	}
	for { // drain the operator stack
		top, ok := stack.Pop()
		if !ok {
			break
		}
		if top.(exprtree.Token) == lparen {
			return nil, &exprtree.ParenError{Paren: lparen}
		}
		output = append(output, top.(exprtree.Token))
	}
	tracer().Debugf("shunting-yard: %v  ⇒  %v", tokens, output)
	return output, nil
}

// yields decides whether an incoming operator has to wait, i.e. whether the
// operator on top of the stack is popped to the output first. This is the
// classic shunting-yard condition: pop while the stacked operator binds
// stronger, or equally strong with a left-associative incoming operator.
func yields(incoming exprtree.Operator, top exprtree.Token) bool {
	topop, ok := exprtree.OperatorFor(top)
	if !ok {
		return false
	}
	if incoming.Precedence() < topop.Precedence() {
		return true
	}
	return incoming.Precedence() == topop.Precedence() && incoming.Assoc() == exprtree.LeftAssoc
}
