package rules

import (
	"github.com/prooflab/stepcheck/internal/logic"
)

// HypotheticalSyllogism chains two implications: from P → Q and Q → R
// conclude P → R. Premise order is not significant: the as-given order is
// tried first, and the swapped order only when the as-given one does not
// chain. Two implications that chain in neither order are rejected as an
// invalid application; the operator diagnostic is reserved for premises
// that are not implications at all.
type HypotheticalSyllogism struct {
	noAutoFill
	noSubproofs
}

func (HypotheticalSyllogism) Name() string {
	return "Hypothetical Syllogism"
}

func (HypotheticalSyllogism) ShortName() string {
	return "HS"
}

func (HypotheticalSyllogism) Types() []RuleType {
	return []RuleType{Inference}
}

func (HypotheticalSyllogism) RequiredPremises(*logic.Claim) int {
	return 2
}

func (HypotheticalSyllogism) AllowsReordering() bool {
	return true
}

func (HypotheticalSyllogism) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	p1 := premises[0].Expr()
	p2 := premises[1].Expr()
	if p1.Operator() != logic.OpConditional || p2.Operator() != logic.OpConditional {
		return logic.ViolationReport("Both premises must be implications")
	}
	if conclusion.Operator() != logic.OpConditional {
		return logic.ViolationReport("The conclusion must be an implication")
	}

	chains := func(a, b *logic.Expr) bool {
		return a.Operand(1).Equal(b.Operand(0))
	}
	if chains(p1, p2) {
		if conclusion.Operand(0).Equal(p1.Operand(0)) && conclusion.Operand(1).Equal(p2.Operand(1)) {
			return logic.ValidReport()
		}
		return logic.ViolationReport("Invalid application of Hypothetical Syllogism")
	}
	if chains(p2, p1) {
		if conclusion.Operand(0).Equal(p2.Operand(0)) && conclusion.Operand(1).Equal(p1.Operand(1)) {
			return logic.ValidReport()
		}
	}
	return logic.ViolationReport("Invalid application of Hypothetical Syllogism")
}
