package rules

import (
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// ModusTollens: from P → Q and ¬Q conclude ¬P. The implication premise is
// located by shape. Both negated comparisons tolerate double negation, so
// a premise R against a consequent ¬R, or a conclusion ¬¬¬P against an
// antecedent ¬¬P, never fails on polarity bookkeeping alone.
type ModusTollens struct {
	noSubproofs
}

func (ModusTollens) Name() string {
	return "Modus Tollens"
}

func (ModusTollens) ShortName() string {
	return "MT"
}

func (ModusTollens) Types() []RuleType {
	return []RuleType{Inference}
}

func (ModusTollens) RequiredPremises(*logic.Claim) int {
	return 2
}

func (ModusTollens) AllowsReordering() bool {
	return true
}

func (ModusTollens) CanAutoFill() bool {
	return true
}

func (ModusTollens) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) != 2 || premises[0].IsSubproof() || premises[1].IsSubproof() {
		return nil, false
	}
	a, b := premises[0].Expr(), premises[1].Expr()
	for _, pair := range [][2]*logic.Expr{{a, b}, {b, a}} {
		cond, minor := pair[0], pair[1]
		if cond.Operator() == logic.OpConditional &&
			minor.EqualIgnoringDoubleNegation(logic.Negate(cond.Operand(1))) {
			return oneSuggestion(logic.Negate(cond.Operand(0)).Render()), true
		}
	}
	return nil, false
}

func (ModusTollens) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	a := premises[0].Expr()
	b := premises[1].Expr()
	if a.Operator() != logic.OpConditional && b.Operator() != logic.OpConditional {
		return logic.ViolationReport("One of the premises must be an implication")
	}

	consequentMatched := false
	for _, pair := range [][2]*logic.Expr{{a, b}, {b, a}} {
		cond, minor := pair[0], pair[1]
		if cond.Operator() != logic.OpConditional {
			continue
		}
		if !minor.EqualIgnoringDoubleNegation(logic.Negate(cond.Operand(1))) {
			continue
		}
		consequentMatched = true
		if conclusion.EqualIgnoringDoubleNegation(logic.Negate(cond.Operand(0))) {
			return logic.ValidReport()
		}
	}
	if consequentMatched {
		return logic.ViolationReport("The conclusion does not match the negation of the antecedent")
	}
	return logic.ViolationReport("The second premise does not match the negation of the consequent")
}
