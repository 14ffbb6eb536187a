package exprtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree")
	defer teardown()
	//
	operands := []Token{"3", "42", "x", "x1", "abc"}
	for _, tok := range operands {
		if !tok.IsOperand() || tok.IsOperator() {
			t.Errorf("%q should classify as operand", tok)
		}
	}
	operators := []Token{"+", "-", "*", "/", "^"}
	for _, tok := range operators {
		if !tok.IsOperator() || tok.IsOperand() {
			t.Errorf("%q should classify as operator", tok)
		}
	}
	invalid := []Token{"", "3.5", "(", ")", "%", "a+b"}
	for _, tok := range invalid {
		if tok.IsOperand() || tok.IsOperator() {
			t.Errorf("%q should classify as neither operand nor operator", tok)
		}
	}
}

func TestOperatorTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree")
	defer teardown()
	//
	table := []struct {
		token Token
		prec  int
		assoc Assoc
	}{
		{"+", 1, LeftAssoc},
		{"-", 1, LeftAssoc},
		{"*", 2, LeftAssoc},
		{"/", 2, LeftAssoc},
		{"^", 3, RightAssoc},
	}
	for _, entry := range table {
		op, ok := OperatorFor(entry.token)
		if !ok {
			t.Fatalf("no operator for token %q", entry.token)
		}
		if op.Precedence() != entry.prec {
			t.Errorf("%q should have precedence %d, has %d", entry.token, entry.prec, op.Precedence())
		}
		if op.Assoc() != entry.assoc {
			t.Errorf("%q has wrong associativity", entry.token)
		}
		if op.Token() != entry.token {
			t.Errorf("operator for %q should print as its token, prints %q", entry.token, op.Token())
		}
	}
}

func TestOperatorApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree")
	defer teardown()
	//
	cases := []struct {
		op   Operator
		x, y float64
		want float64
	}{
		{Add, 3, 4, 7},
		{Sub, 3, 4, -1},
		{Mul, 3, 4, 12},
		{Div, 3, 4, 0.75},
		{Pow, 3, 4, 81},
	}
	for _, c := range cases {
		if got := c.op.Apply(c.x, c.y); got != c.want {
			t.Errorf("%g %s %g should be %g, is %g", c.x, c.op, c.y, c.want, got)
		}
	}
}

func TestDetect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree")
	defer teardown()
	//
	cases := []struct {
		expr     string
		notation Notation
	}{
		{"+ 3 4", Prefix},
		{"3 4 +", Postfix},
		{"3 + 4", Infix},
		{"3", Infix}, // lone operand defaults to infix
	}
	for _, c := range cases {
		notation, err := Detect(Split(c.expr))
		if err != nil {
			t.Fatal(err)
		}
		if notation != c.notation {
			t.Errorf("%q should be detected as %s, was %s", c.expr, c.notation, notation)
		}
	}
}

func TestDetectEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree")
	defer teardown()
	//
	if _, err := Detect(nil); !errors.Is(err, ErrEmptyExpression) {
		t.Errorf("expected ErrEmptyExpression, got %v", err)
	}
	if _, err := Detect(Split("   ")); !errors.Is(err, ErrEmptyExpression) {
		t.Errorf("expected ErrEmptyExpression for blank input, got %v", err)
	}
}
