package rules

import (
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// ModusPonens is conditional elimination: from P → Q and P conclude Q.
// The implication premise is located by shape, so the two premises may
// arrive in either order. Matching is strict: ¬¬P does not satisfy an
// antecedent P here (contrast Modus Tollens).
type ModusPonens struct {
	noSubproofs
}

func (ModusPonens) Name() string {
	return "Modus Ponens (→ Elim)"
}

func (ModusPonens) ShortName() string {
	return "MP"
}

func (ModusPonens) Types() []RuleType {
	return []RuleType{Inference, Elim}
}

func (ModusPonens) RequiredPremises(*logic.Claim) int {
	return 2
}

func (ModusPonens) AllowsReordering() bool {
	return true
}

func (ModusPonens) CanAutoFill() bool {
	return true
}

func (ModusPonens) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) != 2 || premises[0].IsSubproof() || premises[1].IsSubproof() {
		return nil, false
	}
	a, b := premises[0].Expr(), premises[1].Expr()
	for _, pair := range [][2]*logic.Expr{{a, b}, {b, a}} {
		cond, minor := pair[0], pair[1]
		if cond.Operator() == logic.OpConditional && minor.Equal(cond.Operand(0)) {
			return oneSuggestion(cond.Operand(1).Render()), true
		}
	}
	return nil, false
}

func (ModusPonens) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	a := premises[0].Expr()
	b := premises[1].Expr()
	if a.Operator() != logic.OpConditional && b.Operator() != logic.OpConditional {
		return logic.ViolationReport("One of the premises must be an implication")
	}

	antecedentMatched := false
	for _, pair := range [][2]*logic.Expr{{a, b}, {b, a}} {
		cond, minor := pair[0], pair[1]
		if cond.Operator() != logic.OpConditional {
			continue
		}
		if !minor.Equal(cond.Operand(0)) {
			continue
		}
		antecedentMatched = true
		if conclusion.Equal(cond.Operand(1)) {
			return logic.ValidReport()
		}
	}
	if antecedentMatched {
		return logic.ViolationReport("The conclusion does not match the consequent of the implication")
	}
	return logic.ViolationReport("The second premise does not match the antecedent of the implication")
}
