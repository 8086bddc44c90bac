package rules

import (
	"github.com/prooflab/stepcheck/internal/logic"
)

// Addition is OR-introduction: from P conclude P ∨ Q for any Q. The
// premise must appear among the conclusion's disjuncts under strict
// equality. No auto-fill: the added disjunct is unconstrained, so there
// is nothing useful to propose.
type Addition struct {
	noAutoFill
	noSubproofs
}

func (Addition) Name() string {
	return "Addition (∨ Intro)"
}

func (Addition) ShortName() string {
	return "∨ Intro"
}

func (Addition) Types() []RuleType {
	return []RuleType{Inference, Intro}
}

func (Addition) RequiredPremises(*logic.Claim) int {
	return 1
}

func (Addition) AllowsReordering() bool {
	return false
}

func (Addition) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	if conclusion.Operator() != logic.OpOr {
		return logic.ViolationReport("The conclusion is not a disjunction")
	}
	premise := premises[0].Expr()
	for _, d := range conclusion.Flattened().Operands() {
		if d.Equal(premise) {
			return logic.ValidReport()
		}
	}
	return logic.ViolationReport("The premise is not a disjunct in the conclusion")
}
