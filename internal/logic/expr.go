package logic

import (
	"fmt"
	"strings"
)

// Expr is one node of an immutable expression tree. Atoms carry a symbol
// name and no operands; compound nodes carry an ordered operand list whose
// length is fixed by the operator (NOT is unary, CONDITIONAL/BICONDITIONAL
// are binary, AND/OR take two or more operands).
//
// Expr values must be treated as read-only after construction; every
// accessor that exposes operands returns a fresh slice.
type Expr struct {
	op       Operator
	sym      string
	operands []*Expr
}

// InvalidArityError reports an attempt to construct a compound expression
// with the wrong number of operands. This is a collaborator bug: a correct
// parser never produces such trees, so the error is raised at construction
// and never during matching.
type InvalidArityError struct {
	Op  Operator
	Got int
}

func (e *InvalidArityError) Error() string {
	if e.Op.Variadic() {
		return fmt.Sprintf("operator %s requires at least %d operands, got %d", e.Op, e.Op.MinArity(), e.Got)
	}
	return fmt.Sprintf("operator %s requires exactly %d operands, got %d", e.Op, e.Op.MinArity(), e.Got)
}

// NewAtom constructs an atomic expression from a symbol name.
func NewAtom(symbol string) *Expr {
	return &Expr{op: OpAtom, sym: symbol}
}

// NewExpr constructs a compound expression. The operand count must equal
// the operator's arity, or be at least the minimum for variadic operators.
func NewExpr(op Operator, operands ...*Expr) (*Expr, error) {
	if op == OpAtom {
		return nil, &InvalidArityError{Op: op, Got: len(operands)}
	}
	if op.Variadic() {
		if len(operands) < op.MinArity() {
			return nil, &InvalidArityError{Op: op, Got: len(operands)}
		}
	} else if len(operands) != op.MinArity() {
		return nil, &InvalidArityError{Op: op, Got: len(operands)}
	}
	ops := make([]*Expr, len(operands))
	copy(ops, operands)
	return &Expr{op: op, operands: ops}, nil
}

// Negate wraps an expression in a negation. Always well-formed.
func Negate(e *Expr) *Expr {
	return &Expr{op: OpNot, operands: []*Expr{e}}
}

// Implies builds the conditional a → b.
func Implies(a, b *Expr) *Expr {
	return &Expr{op: OpConditional, operands: []*Expr{a, b}}
}

// Iff builds the biconditional a ↔ b.
func Iff(a, b *Expr) *Expr {
	return &Expr{op: OpBiconditional, operands: []*Expr{a, b}}
}

// Operator returns the node's operator tag.
func (e *Expr) Operator() Operator {
	return e.op
}

// Symbol returns the atom's name; empty for compound nodes.
func (e *Expr) Symbol() string {
	return e.sym
}

// Arity returns the number of operands.
func (e *Expr) Arity() int {
	return len(e.operands)
}

// Operands returns a copy of the ordered operand list; empty for atoms.
func (e *Expr) Operands() []*Expr {
	if len(e.operands) == 0 {
		return nil
	}
	ops := make([]*Expr, len(e.operands))
	copy(ops, e.operands)
	return ops
}

// Operand returns the i-th operand without copying the list.
func (e *Expr) Operand(i int) *Expr {
	return e.operands[i]
}

// Equal is strict structural equality: same operator, same symbol, and
// pairwise-equal operands in order. ¬¬X and X are NOT equal under this
// comparison; see EqualIgnoringDoubleNegation.
func (e *Expr) Equal(other *Expr) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return e == other
	}
	if e.op != other.op || e.sym != other.sym || len(e.operands) != len(other.operands) {
		return false
	}
	for i := range e.operands {
		if !e.operands[i].Equal(other.operands[i]) {
			return false
		}
	}
	return true
}

// EqualIgnoringDoubleNegation compares two expressions treating ¬¬X as
// interchangeable with X at every level. This is a distinct comparison
// from Equal: several rules need the strict form for some checks and the
// tolerant form for others within the same verification.
func (e *Expr) EqualIgnoringDoubleNegation(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	a, b := e.peelDoubleNegations(), other.peelDoubleNegations()
	if a.op != b.op || a.sym != b.sym || len(a.operands) != len(b.operands) {
		return false
	}
	for i := range a.operands {
		if !a.operands[i].EqualIgnoringDoubleNegation(b.operands[i]) {
			return false
		}
	}
	return true
}

// peelDoubleNegations removes ¬¬ pairs at the root only.
func (e *Expr) peelDoubleNegations() *Expr {
	for e.op == OpNot && e.operands[0].op == OpNot {
		e = e.operands[0].operands[0]
	}
	return e
}

// ContainsOperand reports whether sub equals this expression or one of its
// immediate operands, under strict equality. For a conjunction this asks
// "is sub a conjunct (or the whole conjunction)".
func (e *Expr) ContainsOperand(sub *Expr) bool {
	if e.Equal(sub) {
		return true
	}
	for _, op := range e.operands {
		if op.Equal(sub) {
			return true
		}
	}
	return false
}

// ContainsOperandIgnoringDoubleNegation is ContainsOperand under the
// double-negation-tolerant comparison.
func (e *Expr) ContainsOperandIgnoringDoubleNegation(sub *Expr) bool {
	if e.EqualIgnoringDoubleNegation(sub) {
		return true
	}
	for _, op := range e.operands {
		if op.EqualIgnoringDoubleNegation(sub) {
			return true
		}
	}
	return false
}

// Flattened returns an expression in which directly nested nodes of the
// same associative operator (AND/OR) have been merged into a single n-ary
// node: (A ∧ (B ∧ C)) becomes (A ∧ B ∧ C). The receiver is untouched;
// non-associative nodes are returned as-is.
func (e *Expr) Flattened() *Expr {
	if !e.op.Variadic() {
		return e
	}
	flat := make([]*Expr, 0, len(e.operands))
	var collect func(x *Expr)
	collect = func(x *Expr) {
		if x.op == e.op {
			for _, op := range x.operands {
				collect(op)
			}
			return
		}
		flat = append(flat, x)
	}
	collect(e)
	return &Expr{op: e.op, operands: flat}
}

// StripDoubleNegations returns a copy of the expression with every ¬¬
// pair removed, at every depth. Used for the tolerant rendering in
// diagnostics; the receiver is untouched.
func (e *Expr) StripDoubleNegations() *Expr {
	p := e.peelDoubleNegations()
	if len(p.operands) == 0 {
		return p
	}
	ops := make([]*Expr, len(p.operands))
	for i, op := range p.operands {
		ops[i] = op.StripDoubleNegations()
	}
	return &Expr{op: p.op, sym: p.sym, operands: ops}
}

// Render produces the canonical textual form of the expression, used both
// for display and inside diagnostic messages. Deterministic and free of
// side effects.
func (e *Expr) Render() string {
	var sb strings.Builder
	e.render(&sb, -1)
	return sb.String()
}

// RenderIgnoringDoubleNegation renders the expression with all ¬¬ pairs
// removed.
func (e *Expr) RenderIgnoringDoubleNegation() string {
	return e.StripDoubleNegations().Render()
}

// String implements fmt.Stringer; identical to Render.
func (e *Expr) String() string {
	return e.Render()
}

// render writes the expression, parenthesizing when the surrounding
// context binds at least as tightly.
func (e *Expr) render(sb *strings.Builder, outerPrec int) {
	switch e.op {
	case OpAtom:
		sb.WriteString(e.sym)
	case OpNot:
		sb.WriteString("¬")
		e.operands[0].render(sb, e.op.Precedence())
	default:
		paren := e.op.Precedence() <= outerPrec
		if paren {
			sb.WriteString("(")
		}
		for i, op := range e.operands {
			if i > 0 {
				sb.WriteString(" " + e.op.String() + " ")
			}
			op.render(sb, e.op.Precedence())
		}
		if paren {
			sb.WriteString(")")
		}
	}
}
