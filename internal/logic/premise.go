package logic

// Subproof is a discharged nested proof fragment: the ordered assumptions
// it opened with and the conclusion it established. Rules that take
// subproof-shaped premises (e.g. conditional proof) consume these; the
// checker never re-verifies the fragment's interior here.
type Subproof struct {
	assumptions []*Expr
	conclusion  *Expr
}

// NewSubproof builds a discharged subproof record.
func NewSubproof(conclusion *Expr, assumptions ...*Expr) *Subproof {
	as := make([]*Expr, len(assumptions))
	copy(as, assumptions)
	return &Subproof{assumptions: as, conclusion: conclusion}
}

// Assumptions returns a copy of the subproof's ordered assumptions.
func (s *Subproof) Assumptions() []*Expr {
	as := make([]*Expr, len(s.assumptions))
	copy(as, s.assumptions)
	return as
}

// AssumptionCount returns the number of assumptions.
func (s *Subproof) AssumptionCount() int {
	return len(s.assumptions)
}

// Assumption returns the i-th assumption.
func (s *Subproof) Assumption(i int) *Expr {
	return s.assumptions[i]
}

// Conclusion returns the expression the subproof established.
func (s *Subproof) Conclusion() *Expr {
	return s.conclusion
}

// Premise is one input to a claim: either a plain expression taken as
// given, or a reference to a discharged subproof. A rule expecting a
// plain expression must reject a subproof premise as a shape mismatch,
// never crash on it; the verification driver enforces that before the
// rule runs.
type Premise struct {
	expr     *Expr
	subproof *Subproof
}

// NewPremise wraps a plain expression as a premise.
func NewPremise(e *Expr) Premise {
	return Premise{expr: e}
}

// NewSubproofPremise wraps a discharged subproof as a premise.
func NewSubproofPremise(s *Subproof) Premise {
	return Premise{subproof: s}
}

// IsSubproof reports whether the premise is subproof-shaped.
func (p Premise) IsSubproof() bool {
	return p.subproof != nil
}

// Expr returns the plain expression; nil for a subproof premise.
func (p Premise) Expr() *Expr {
	return p.expr
}

// Subproof returns the subproof; nil for a plain premise.
func (p Premise) Subproof() *Subproof {
	return p.subproof
}

// Render returns the premise's display form. Subproofs render as
// "assumptions ⊢ conclusion".
func (p Premise) Render() string {
	if p.subproof == nil {
		return p.expr.Render()
	}
	out := ""
	for i, a := range p.subproof.assumptions {
		if i > 0 {
			out += ", "
		}
		out += a.Render()
	}
	return out + " ⊢ " + p.subproof.conclusion.Render()
}
