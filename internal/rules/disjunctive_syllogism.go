package rules

import (
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// DisjunctiveSyllogism: from P ∨ Q and ¬P conclude Q. The disjunction and
// the negated-disjunct premise are located by shape, so order does not
// matter. For an n-ary disjunction the conclusion is the disjunction of
// the remaining disjuncts, in the premise's order. The negation match and
// the conclusion match tolerate double negation.
type DisjunctiveSyllogism struct {
	noSubproofs
}

func (DisjunctiveSyllogism) Name() string {
	return "Disjunctive Syllogism"
}

func (DisjunctiveSyllogism) ShortName() string {
	return "DS"
}

func (DisjunctiveSyllogism) Types() []RuleType {
	return []RuleType{Inference, Elim}
}

func (DisjunctiveSyllogism) RequiredPremises(*logic.Claim) int {
	return 2
}

func (DisjunctiveSyllogism) AllowsReordering() bool {
	return true
}

func (DisjunctiveSyllogism) CanAutoFill() bool {
	return true
}

func (DisjunctiveSyllogism) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) != 2 || premises[0].IsSubproof() || premises[1].IsSubproof() {
		return nil, false
	}
	for _, pair := range [][2]*logic.Expr{
		{premises[0].Expr(), premises[1].Expr()},
		{premises[1].Expr(), premises[0].Expr()},
	} {
		rest, ok := remainingDisjuncts(pair[0], pair[1])
		if !ok {
			continue
		}
		if e := disjunctionOf(rest); e != nil {
			return oneSuggestion(e.Render()), true
		}
	}
	return nil, false
}

func (DisjunctiveSyllogism) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	a := premises[0].Expr()
	b := premises[1].Expr()
	if a.Operator() != logic.OpOr && b.Operator() != logic.OpOr {
		return logic.ViolationReport("One of the premises must be a disjunction")
	}

	negationMatched := false
	for _, pair := range [][2]*logic.Expr{{a, b}, {b, a}} {
		rest, ok := remainingDisjuncts(pair[0], pair[1])
		if !ok {
			continue
		}
		negationMatched = true
		want := disjunctionOf(rest)
		if want != nil && conclusion.EqualIgnoringDoubleNegation(want) {
			return logic.ValidReport()
		}
	}
	if negationMatched {
		return logic.ViolationReport("The conclusion must be the disjunction of the remaining disjuncts")
	}
	return logic.ViolationReport("The second premise must be the negation of one of the disjuncts")
}

// remainingDisjuncts removes from disj's flattened disjunct list the first
// disjunct whose negation matches neg (tolerating double negation). ok is
// false when disj is not a disjunction or no disjunct matches.
func remainingDisjuncts(disj, neg *logic.Expr) (rest []*logic.Expr, ok bool) {
	if disj.Operator() != logic.OpOr {
		return nil, false
	}
	ds := disj.Flattened().Operands()
	for i, d := range ds {
		if neg.EqualIgnoringDoubleNegation(logic.Negate(d)) {
			return append(append([]*logic.Expr{}, ds[:i]...), ds[i+1:]...), true
		}
	}
	return nil, false
}

// disjunctionOf rebuilds a disjunction from the remaining disjuncts; a
// single disjunct stands alone.
func disjunctionOf(ds []*logic.Expr) *logic.Expr {
	if len(ds) == 1 {
		return ds[0]
	}
	e, err := logic.NewExpr(logic.OpOr, ds...)
	if err != nil {
		return nil
	}
	return e
}
