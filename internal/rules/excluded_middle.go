package rules

import (
	"github.com/prooflab/stepcheck/internal/logic"
)

// ExcludedMiddle licenses P ∨ ¬P from no premises, in either disjunct
// order.
type ExcludedMiddle struct {
	noAutoFill
	noSubproofs
}

func (ExcludedMiddle) Name() string {
	return "Law of Excluded Middle"
}

func (ExcludedMiddle) ShortName() string {
	return "LEM"
}

func (ExcludedMiddle) Types() []RuleType {
	return []RuleType{Inference, Intro}
}

func (ExcludedMiddle) RequiredPremises(*logic.Claim) int {
	return 0
}

func (ExcludedMiddle) AllowsReordering() bool {
	return false
}

func (ExcludedMiddle) Verify(conclusion *logic.Expr, _ []logic.Premise) logic.Report {
	if conclusion.Operator() != logic.OpOr || conclusion.Arity() != 2 {
		return logic.ViolationReport("The conclusion must be a disjunction of a formula and its negation")
	}
	a, b := conclusion.Operand(0), conclusion.Operand(1)
	if b.Equal(logic.Negate(a)) || a.Equal(logic.Negate(b)) {
		return logic.ValidReport()
	}
	return logic.ViolationReport("The conclusion must be a disjunction of a formula and its negation")
}
