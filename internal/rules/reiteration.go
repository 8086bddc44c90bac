package rules

import (
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// Reiteration restates a premise verbatim. Strict equality: ¬¬P is not a
// reiteration of P.
type Reiteration struct {
	noSubproofs
}

func (Reiteration) Name() string {
	return "Reiteration"
}

func (Reiteration) ShortName() string {
	return "Reit"
}

func (Reiteration) Types() []RuleType {
	return []RuleType{Inference}
}

func (Reiteration) RequiredPremises(*logic.Claim) int {
	return 1
}

func (Reiteration) AllowsReordering() bool {
	return false
}

func (Reiteration) CanAutoFill() bool {
	return true
}

func (Reiteration) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) != 1 || premises[0].IsSubproof() {
		return nil, false
	}
	return oneSuggestion(premises[0].Expr().Render()), true
}

func (Reiteration) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	if !conclusion.Equal(premises[0].Expr()) {
		return logic.ViolationReport("The conclusion must match the premise exactly")
	}
	return logic.ValidReport()
}
