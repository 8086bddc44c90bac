package rules

import (
	"fmt"
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// VerifyClaim checks one asserted proof step against the rule it names.
// Premise-count and plain/subproof-shape gating happens here, once, so
// individual rules never see a claim that violates their declared
// contract. Logical failures come back as an Invalid report; only an
// unknown rule identifier is a Go error.
func VerifyClaim(c *logic.Claim) (logic.Report, error) {
	r, err := Lookup(c.RuleID())
	if err != nil {
		return logic.Report{}, err
	}
	return Apply(r, c), nil
}

// Apply runs a rule against a claim, gating the premise contract first.
func Apply(r Rule, c *logic.Claim) logic.Report {
	premises := c.Premises()

	want := r.RequiredPremises(c)
	if len(premises) != want {
		return logic.PremiseCountReport(fmt.Sprintf(
			"%s requires %d premise(s), but %d were given", r.Name(), want, len(premises)))
	}

	// Subproof slots sit in the trailing positions.
	sub := r.SubproofPremises(c)
	for i, p := range premises {
		wantSubproof := i >= len(premises)-sub
		if p.IsSubproof() && !wantSubproof {
			return logic.PremiseShapeReport(fmt.Sprintf(
				"premise %d of %s must be a plain expression, not a subproof", i+1, r.Name()))
		}
		if !p.IsSubproof() && wantSubproof {
			return logic.PremiseShapeReport(fmt.Sprintf(
				"premise %d of %s must be a subproof", i+1, r.Name()))
		}
	}

	return r.Verify(c.Conclusion(), premises)
}

// Suggest returns the rule's auto-fill proposals for the given premises.
// The bool result is false when the rule does not support auto-fill or
// the premises do not match its pattern; an applicable rule may still
// yield an empty sequence.
func Suggest(ruleID string, premises []logic.Premise) (iter.Seq[string], bool, error) {
	r, err := Lookup(ruleID)
	if err != nil {
		return nil, false, err
	}
	if !r.CanAutoFill() {
		return nil, false, nil
	}
	seq, ok := r.AutoFill(premises)
	return seq, ok, nil
}
