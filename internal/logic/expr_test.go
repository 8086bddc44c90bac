package logic

import (
	"errors"
	"testing"
)

func atom(name string) *Expr { return NewAtom(name) }

func and(es ...*Expr) *Expr {
	e, err := NewExpr(OpAnd, es...)
	if err != nil {
		panic(err)
	}
	return e
}

func or(es ...*Expr) *Expr {
	e, err := NewExpr(OpOr, es...)
	if err != nil {
		panic(err)
	}
	return e
}

// =======================
// Construction
// =======================

func TestConstructionArity(t *testing.T) {
	a, b := atom("A"), atom("B")

	cases := []struct {
		name     string
		op       Operator
		operands []*Expr
		wantErr  bool
	}{
		{"not unary", OpNot, []*Expr{a}, false},
		{"not with two operands", OpNot, []*Expr{a, b}, true},
		{"not with none", OpNot, nil, true},
		{"and binary", OpAnd, []*Expr{a, b}, false},
		{"and n-ary", OpAnd, []*Expr{a, b, atom("C")}, false},
		{"and with one operand", OpAnd, []*Expr{a}, true},
		{"conditional binary", OpConditional, []*Expr{a, b}, false},
		{"conditional ternary", OpConditional, []*Expr{a, b, a}, true},
		{"biconditional unary", OpBiconditional, []*Expr{a}, true},
		{"atom via NewExpr", OpAtom, nil, true},
	}
	for _, tc := range cases {
		_, err := NewExpr(tc.op, tc.operands...)
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if tc.wantErr && err != nil {
			var arityErr *InvalidArityError
			if !errors.As(err, &arityErr) {
				t.Errorf("%s: expected InvalidArityError, got %T", tc.name, err)
			}
		}
	}
}

// =======================
// Equality
// =======================

func TestStrictEquality(t *testing.T) {
	a, b := atom("A"), atom("B")

	if !and(a, b).Equal(and(atom("A"), atom("B"))) {
		t.Error("structurally identical trees should be equal")
	}
	if and(a, b).Equal(and(b, a)) {
		t.Error("AND equality is order-sensitive")
	}
	if Implies(a, b).Equal(Implies(b, a)) {
		t.Error("conditional equality is order-sensitive")
	}
	if Negate(Negate(a)).Equal(a) {
		t.Error("strict equality must not strip double negations")
	}
	if a.Equal(atom("B")) {
		t.Error("distinct atoms should not be equal")
	}
}

func TestEqualityIgnoringDoubleNegation(t *testing.T) {
	a, b := atom("A"), atom("B")

	if !Negate(Negate(a)).EqualIgnoringDoubleNegation(a) {
		t.Error("¬¬A should match A")
	}
	if !a.EqualIgnoringDoubleNegation(Negate(Negate(a))) {
		t.Error("A should match ¬¬A (symmetric)")
	}
	// pairs peel at every depth
	nested := and(Negate(Negate(a)), b)
	if !nested.EqualIgnoringDoubleNegation(and(a, Negate(Negate(b)))) {
		t.Error("double negations should be ignored inside operands")
	}
	// quadruple negation reduces fully
	if !Negate(Negate(Negate(Negate(a)))).EqualIgnoringDoubleNegation(a) {
		t.Error("¬¬¬¬A should match A")
	}
	// single negation is a real difference
	if Negate(a).EqualIgnoringDoubleNegation(a) {
		t.Error("¬A must not match A")
	}
	if Negate(Negate(Negate(a))).EqualIgnoringDoubleNegation(a) {
		t.Error("¬¬¬A must not match A")
	}
}

func TestContainsOperand(t *testing.T) {
	a, b, c := atom("A"), atom("B"), atom("C")
	conj := and(a, b)

	if !conj.ContainsOperand(a) || !conj.ContainsOperand(b) {
		t.Error("conjuncts should be contained")
	}
	if conj.ContainsOperand(c) {
		t.Error("C is not a conjunct")
	}
	// the whole expression matches too
	if !conj.ContainsOperand(and(a, b)) {
		t.Error("an expression contains itself")
	}
	if !conj.ContainsOperandIgnoringDoubleNegation(Negate(Negate(a))) {
		t.Error("tolerant containment should match ¬¬A against conjunct A")
	}
}

// =======================
// Transformations
// =======================

func TestFlattened(t *testing.T) {
	a, b, c := atom("A"), atom("B"), atom("C")
	nested := and(a, and(b, c))

	flat := nested.Flattened()
	if flat.Arity() != 3 {
		t.Errorf("expected 3 conjuncts after flattening, got %d", flat.Arity())
	}
	if nested.Arity() != 2 {
		t.Error("flattening must not mutate the original")
	}
	// OR nested inside AND stays intact
	mixed := and(a, or(b, c)).Flattened()
	if mixed.Arity() != 2 {
		t.Errorf("expected 2 operands, got %d", mixed.Arity())
	}
}

func TestStripDoubleNegations(t *testing.T) {
	a := atom("A")
	e := and(Negate(Negate(a)), Negate(atom("B")))

	stripped := e.StripDoubleNegations()
	if got := stripped.Render(); got != "A ∧ ¬B" {
		t.Errorf("expected %q, got %q", "A ∧ ¬B", got)
	}
	// single negations survive
	if got := Negate(Negate(Negate(a))).StripDoubleNegations().Render(); got != "¬A" {
		t.Errorf("expected %q, got %q", "¬A", got)
	}
	if got := e.Render(); got != "¬¬A ∧ ¬B" {
		t.Errorf("original changed: %q", got)
	}
}

// =======================
// Rendering
// =======================

func TestRender(t *testing.T) {
	a, b, c := atom("A"), atom("B"), atom("C")

	cases := []struct {
		expr *Expr
		want string
	}{
		{a, "A"},
		{Negate(a), "¬A"},
		{Negate(Negate(a)), "¬¬A"},
		{and(a, b), "A ∧ B"},
		{and(a, b, c), "A ∧ B ∧ C"},
		{Negate(and(a, b)), "¬(A ∧ B)"},
		{and(a, or(b, c)), "A ∧ (B ∨ C)"},
		{or(and(a, b), c), "A ∧ B ∨ C"},
		{Implies(a, b), "A → B"},
		{Implies(Implies(a, b), c), "(A → B) → C"},
		{Implies(and(a, b), c), "A ∧ B → C"},
		{Iff(a, Implies(b, c)), "A ↔ B → C"},
		{Iff(Implies(a, b), c), "A → B ↔ C"},
	}
	for _, tc := range cases {
		if got := tc.expr.Render(); got != tc.want {
			t.Errorf("Render: expected %q, got %q", tc.want, got)
		}
	}

	// deterministic
	e := and(Negate(a), or(b, c))
	if e.Render() != e.Render() {
		t.Error("Render must be deterministic")
	}
}

func TestOperandsCopy(t *testing.T) {
	a, b := atom("A"), atom("B")
	e := and(a, b)

	ops := e.Operands()
	ops[0] = atom("Z")
	if !e.Operand(0).Equal(a) {
		t.Error("mutating the returned slice must not affect the expression")
	}
}
