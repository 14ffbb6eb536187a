package exprtree

import (
	"errors"
	"strconv"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// ErrEmptyExpression is returned when a token sequence is empty where an
// expression is required.
var ErrEmptyExpression = errors.New("empty expression")

// InvalidTokenError is an error indicating a token which is neither an
// operand nor an operator (nor a parenthesis, where parentheses are legal).
type InvalidTokenError struct {
	// Token is the offending token.
	Token Token
	// Notation is the notation the expression was parsed as.
	Notation Notation
}

func (err *InvalidTokenError) Error() string {
	return "invalid token " + strconv.Quote(string(err.Token)) + " in " +
		err.Notation.String() + " expression"
}

// ParenError is an error indicating unbalanced parentheses in an infix
// expression.
type ParenError struct {
	// Paren is the unmatched parenthesis.
	Paren Token
}

func (err *ParenError) Error() string {
	return "unbalanced parenthesis " + strconv.Quote(string(err.Paren)) +
		" in infix expression"
}

// ArityError is an error indicating an operator with fewer than two pending
// operands during tree construction.
type ArityError struct {
	// Operator is the operator which found too few operands.
	Operator Token
	// Notation is the notation the expression was parsed as.
	Notation Notation
}

func (err *ArityError) Error() string {
	return "not enough operands for operator " + strconv.Quote(string(err.Operator)) +
		" in " + err.Notation.String() + " expression"
}

// MalformedError is an error indicating that a token sequence did not reduce
// to a single tree: operands were left over after all operators had been
// applied.
type MalformedError struct {
	// Notation is the notation the expression was parsed as.
	Notation Notation
	// Pending is the number of partial trees left on the build stack.
	Pending int
}

func (err *MalformedError) Error() string {
	return "malformed " + err.Notation.String() +
		" expression: incorrect number of operands and operators"
}

// NonNumericError is an error indicating an operand which cannot be
// interpreted as a number during evaluation, e.g. a variable name.
// Evaluation does not support symbolic variables.
type NonNumericError struct {
	// Token is the non-numeric operand.
	Token Token
}

func (err *NonNumericError) Error() string {
	return "cannot evaluate non-numeric operand " + strconv.Quote(string(err.Token))
}

// CorruptTreeError is an error indicating a tree node whose value is neither
// an operand nor an operator. It cannot occur for trees built by package
// tree; it guards against hand-crafted or damaged trees.
type CorruptTreeError struct {
	// Token is the value of the corrupt node.
	Token Token
}

func (err *CorruptTreeError) Error() string {
	return "corrupt expression tree: node value " + strconv.Quote(string(err.Token)) +
		" is neither operand nor operator"
}
