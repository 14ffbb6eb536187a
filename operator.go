package exprtree

import "math"

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Operator is one of the five arithmetic operators. The set is closed:
// precedence, associativity and application are exhaustive over it, so an
// unknown operator can never slip through to evaluation.
type Operator int8

// The operator set, in increasing precedence order.
const (
	Add Operator = iota // binary +
	Sub                 // binary -
	Mul                 // *
	Div                 // /
	Pow                 // ^, right-associative
)

// Assoc is the associativity of an operator.
type Assoc int8

// Operators associate either to the left or to the right.
const (
	LeftAssoc Assoc = iota
	RightAssoc
)

// OperatorFor maps a token to its operator, if any.
func OperatorFor(t Token) (Operator, bool) {
	switch t {
	case "+":
		return Add, true
	case "-":
		return Sub, true
	case "*":
		return Mul, true
	case "/":
		return Div, true
	case "^":
		return Pow, true
	}
	return 0, false
}

// Token returns the token an operator is written as.
func (op Operator) Token() Token {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	return ""
}

func (op Operator) String() string {
	return string(op.Token())
}

// Precedence returns the binding strength of an operator: 1 for additive,
// 2 for multiplicative, 3 for exponentiation.
func (op Operator) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Pow:
		return 3
	}
	return 0
}

// Assoc returns the associativity of an operator. All operators associate
// to the left, except exponentiation.
func (op Operator) Assoc() Assoc {
	if op == Pow {
		return RightAssoc
	}
	return LeftAssoc
}

// Apply applies an operator to two float64 arguments. Division by zero is
// not trapped: it propagates the IEEE-754 result (±Inf or NaN), as does an
// invalid power such as a negative base with a fractional exponent (NaN).
func (op Operator) Apply(x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		return x / y
	case Pow:
		return math.Pow(x, y)
	}
	return math.NaN() // unreachable for a valid Operator
}
