package rules

import (
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// ConstructiveDilemma: from P ∨ R, P → Q and R → S conclude Q ∨ S. The
// three premises are located by shape (one binary disjunction, two
// implications) in any order; the implications may pair with the
// disjuncts in either assignment. The conclusion's disjuncts follow the
// order of the disjunction premise.
type ConstructiveDilemma struct {
	noSubproofs
}

func (ConstructiveDilemma) Name() string {
	return "Constructive Dilemma"
}

func (ConstructiveDilemma) ShortName() string {
	return "CD"
}

func (ConstructiveDilemma) Types() []RuleType {
	return []RuleType{Inference}
}

func (ConstructiveDilemma) RequiredPremises(*logic.Claim) int {
	return 3
}

func (ConstructiveDilemma) AllowsReordering() bool {
	return true
}

func (ConstructiveDilemma) CanAutoFill() bool {
	return true
}

func (ConstructiveDilemma) AutoFill(premises []logic.Premise) (iter.Seq[string], bool) {
	if len(premises) != 3 {
		return nil, false
	}
	for _, p := range premises {
		if p.IsSubproof() {
			return nil, false
		}
	}
	disj, conds, ok := dilemmaShape(premises)
	if !ok {
		return nil, false
	}
	want, ok := dilemmaConsequents(disj, conds)
	if !ok {
		return nil, false
	}
	return oneSuggestion(want.Render()), true
}

func (ConstructiveDilemma) Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report {
	disj, conds, ok := dilemmaShape(premises)
	if !ok {
		return logic.ViolationReport("The premises must be one disjunction and two implications")
	}
	if disj.Arity() != 2 {
		return logic.ViolationReport("The disjunction premise must have exactly two disjuncts")
	}
	want, ok := dilemmaConsequents(disj, conds)
	if !ok {
		return logic.ViolationReport("The antecedents of the implications must match the disjuncts")
	}
	if conclusion.Operator() != logic.OpOr {
		return logic.ViolationReport("The conclusion must be a disjunction")
	}
	if !conclusion.Equal(want) {
		return logic.ViolationReport("The conclusion must be the disjunction of the consequents")
	}
	return logic.ValidReport()
}

// dilemmaShape splits the premises into the single disjunction and the
// two implications, in any supplied order.
func dilemmaShape(premises []logic.Premise) (disj *logic.Expr, conds [2]*logic.Expr, ok bool) {
	n := 0
	for _, p := range premises {
		e := p.Expr()
		switch e.Operator() {
		case logic.OpOr:
			if disj != nil {
				return nil, conds, false
			}
			disj = e
		case logic.OpConditional:
			if n == 2 {
				return nil, conds, false
			}
			conds[n] = e
			n++
		default:
			return nil, conds, false
		}
	}
	return disj, conds, disj != nil && n == 2
}

// dilemmaConsequents pairs each disjunct with the implication whose
// antecedent matches it and returns the disjunction of the consequents.
func dilemmaConsequents(disj *logic.Expr, conds [2]*logic.Expr) (*logic.Expr, bool) {
	if disj.Arity() != 2 {
		return nil, false
	}
	d0, d1 := disj.Operand(0), disj.Operand(1)
	for _, pair := range [][2]*logic.Expr{{conds[0], conds[1]}, {conds[1], conds[0]}} {
		if d0.Equal(pair[0].Operand(0)) && d1.Equal(pair[1].Operand(0)) {
			e, err := logic.NewExpr(logic.OpOr, pair[0].Operand(1), pair[1].Operand(1))
			if err != nil {
				return nil, false
			}
			return e, true
		}
	}
	return nil, false
}
