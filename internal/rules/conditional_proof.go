package rules

import (
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// ConditionalProof is conditional introduction: a discharged subproof that
// assumes A and concludes B licenses A → B. This is the one catalogue
// rule whose premise is subproof-shaped; the driver guarantees the shape
// before Verify runs.
type ConditionalProof struct{}

func (ConditionalProof) Name() string {
	return "Conditional Proof (→ Intro)"
}

func (ConditionalProof) ShortName() string {
	return "→ Intro"
}

func (ConditionalProof) Types() []RuleType {
	return []RuleType{Inference, Intro}
}

func (ConditionalProof) RequiredPremises(*logic.Claim) int {
	return 1
}

func (ConditionalProof) SubproofPremises(*logic.Claim) int {
	return 1
}

func (ConditionalProof) AllowsReordering() bool {
	return false
}

func (ConditionalProof) CanAutoFill() bool {
	return true
}

func (ConditionalProof) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) != 1 || !premises[0].IsSubproof() {
		return nil, false
	}
	sp := premises[0].Subproof()
	if sp.AssumptionCount() == 0 {
		return nil, false
	}
	return oneSuggestion(logic.Implies(sp.Assumption(0), sp.Conclusion()).Render()), true
}

func (ConditionalProof) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	sp := premises[0].Subproof()
	if sp.AssumptionCount() == 0 {
		return logic.ViolationReport("The subproof must make an assumption")
	}
	if conclusion.Operator() != logic.OpConditional {
		return logic.ViolationReport("The conclusion must be an implication")
	}
	if !conclusion.Operand(0).Equal(sp.Assumption(0)) {
		return logic.ViolationReport("The antecedent of the conclusion must match the subproof's assumption")
	}
	if !conclusion.Operand(1).Equal(sp.Conclusion()) {
		return logic.ViolationReport("The consequent of the conclusion must match the subproof's conclusion")
	}
	return logic.ValidReport()
}
