package rules

import (
	"fmt"
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// Simplification is AND-elimination: from A₁ ∧ … ∧ Aₙ conclude any
// conjunct, or a conjunction whose every conjunct appears in the premise.
// Conjunct matching tolerates double negation.
//
// A conclusion equal to the entire premise also verifies, because the
// containment check matches the whole expression as well as its conjuncts.
// That permissiveness is preserved from the original checker; tightening
// it would reject proofs the original accepts.
type Simplification struct {
	noSubproofs
}

func (Simplification) Name() string {
	return "Simplification (∧ Elim)"
}

func (Simplification) ShortName() string {
	return "∧ Elim"
}

func (Simplification) Types() []RuleType {
	return []RuleType{Inference, Elim}
}

func (Simplification) RequiredPremises(*logic.Claim) int {
	return 1
}

func (Simplification) AllowsReordering() bool {
	return false
}

func (Simplification) CanAutoFill() bool {
	return true
}

func (Simplification) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) != 1 || premises[0].IsSubproof() {
		return nil, false
	}
	p := premises[0].Expr()
	if p.Operator() != logic.OpAnd {
		return nil, false
	}
	return renderAll(p.Operands()), true
}

func (Simplification) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	premise := premises[0].Expr()
	if premise.Operator() != logic.OpAnd {
		return logic.ViolationReport("The premise is not a conjunction")
	}
	if premise.ContainsOperandIgnoringDoubleNegation(conclusion) {
		return logic.ValidReport()
	}
	if conclusion.Operator() != logic.OpAnd {
		return logic.ViolationReport("The conclusion is not a conjunct in the premise")
	}
	for _, e := range conclusion.Operands() {
		if !premise.ContainsOperandIgnoringDoubleNegation(e) {
			return logic.ViolationReport(fmt.Sprintf(
				"The conclusion is not a conjunct in the premise and contains \"%s\", which is not present in the premise",
				e.RenderIgnoringDoubleNegation()))
		}
	}
	return logic.ValidReport()
}
