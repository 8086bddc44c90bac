package logic

// Claim is one asserted proof line: the conclusion, the ordered premises
// it is derived from, and the identifier of the rule the author invoked.
// A Claim is built once per verification attempt and never mutated; a
// retry builds a fresh Claim.
type Claim struct {
	ruleID     string
	conclusion *Expr
	premises   []Premise
}

// NewClaim bundles a proof step for verification.
func NewClaim(ruleID string, conclusion *Expr, premises []Premise) *Claim {
	ps := make([]Premise, len(premises))
	copy(ps, premises)
	return &Claim{ruleID: ruleID, conclusion: conclusion, premises: ps}
}

// RuleID returns the identifier of the asserted rule.
func (c *Claim) RuleID() string {
	return c.ruleID
}

// Conclusion returns the asserted conclusion.
func (c *Claim) Conclusion() *Expr {
	return c.conclusion
}

// Premises returns a copy of the ordered premise list.
func (c *Claim) Premises() []Premise {
	ps := make([]Premise, len(c.premises))
	copy(ps, c.premises)
	return ps
}

// PremiseCount returns the number of premises.
func (c *Claim) PremiseCount() int {
	return len(c.premises)
}
