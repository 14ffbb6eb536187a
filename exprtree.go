package exprtree

import (
	"strings"
	"unicode"
)

// --- A general purpose type for expression tokens --------------------------

// Token is an atomic unit of a tokenized expression. Tokens arrive pre-split,
// i.e. the toolbox never lexes multi-character input; it merely classifies
// given tokens as operands or operators.
//
// An operand is a non-empty run of letters and digits: a numeric literal like
// "42", or an identifier like "x1". Note that classification is deliberately
// lenient: identifiers are legal tree leaves, but will be rejected later by
// numeric evaluation.
type Token string

// IsOperator returns true iff t is one of the five arithmetic operators
// + - * / ^.
func (t Token) IsOperator() bool {
	_, ok := OperatorFor(t)
	return ok
}

// IsOperand returns true iff t is non-empty and every character of t is a
// letter or a digit.
func (t Token) IsOperand() bool {
	if len(t) == 0 {
		return false
	}
	for _, r := range t {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Split splits a line of input into tokens at whitespace boundaries.
// It is a convenience for clients which receive expressions as a single
// line, e.g. "7 * 8 - 2 / 4".
func Split(line string) []Token {
	fields := strings.Fields(line)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token(f)
	}
	return tokens
}

// --- Notations --------------------------------------------------------------

// Notation denotes the position of operators within a token sequence:
// between, before or after their operands.
type Notation int8

// Expressions come in one of three notations.
const (
	Infix Notation = iota
	Prefix
	Postfix
)

func (n Notation) String() string {
	switch n {
	case Infix:
		return "infix"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	}
	return "<unknown notation>"
}

// Detect guesses the notation of a token sequence from the position of
// operators: a leading operator signals prefix, a trailing operator postfix,
// anything else infix. A single operand is classified as infix; this is
// intentional, as every notation agrees on a lone leaf.
//
// Detect fails with ErrEmptyExpression for an empty sequence.
func Detect(tokens []Token) (Notation, error) {
	if len(tokens) == 0 {
		return Infix, ErrEmptyExpression
	}
	if tokens[0].IsOperator() {
		return Prefix, nil
	}
	if tokens[len(tokens)-1].IsOperator() {
		return Postfix, nil
	}
	return Infix, nil
}

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
