package rules

import (
	"fmt"
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// Conjunction is AND-introduction: from premises A₁ … Aₙ conclude
// A₁ ∧ … ∧ Aₙ. The match is order-sensitive — the conclusion's flattened
// conjunct list must equal the premise list pairwise, in order — and the
// required premise count follows the conclusion (minimum two).
type Conjunction struct {
	noSubproofs
}

func (Conjunction) Name() string {
	return "Conjunction (∧ Intro)"
}

func (Conjunction) ShortName() string {
	return "∧ Intro"
}

func (Conjunction) Types() []RuleType {
	return []RuleType{Inference, Intro}
}

func (Conjunction) RequiredPremises(c *logic.Claim) int {
	if c == nil || c.Conclusion() == nil || c.Conclusion().Operator() != logic.OpAnd {
		return 2
	}
	n := c.Conclusion().Flattened().Arity()
	if n < 2 {
		return 2
	}
	return n
}

func (Conjunction) AllowsReordering() bool {
	return false
}

func (Conjunction) CanAutoFill() bool {
	return true
}

func (Conjunction) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) < 2 {
		return nil, false
	}
	exprs := make([]*logic.Expr, len(premises))
	for i, p := range premises {
		if p.IsSubproof() {
			return nil, false
		}
		exprs[i] = p.Expr()
	}
	conj, err := logic.NewExpr(logic.OpAnd, exprs...)
	if err != nil {
		return nil, false
	}
	return oneSuggestion(conj.Render()), true
}

func (Conjunction) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	if conclusion.Operator() != logic.OpAnd {
		return logic.ViolationReport("The conclusion is not a conjunction")
	}
	conjuncts := conclusion.Flattened().Operands()
	if len(conjuncts) != len(premises) {
		return logic.ViolationReport(fmt.Sprintf(
			"The conclusion has %d conjuncts but %d premises were given", len(conjuncts), len(premises)))
	}
	for i, c := range conjuncts {
		if !c.Equal(premises[i].Expr()) {
			return logic.ViolationReport(fmt.Sprintf(
				"Conjunct %d of the conclusion is \"%s\", which does not match the premise \"%s\"",
				i+1, c.Render(), premises[i].Expr().Render()))
		}
	}
	return logic.ValidReport()
}
