package logic

// Verdict is the outcome of checking one claim.
type Verdict int

const (
	_ Verdict = iota
	// Valid indicates the rule licenses the step.
	Valid
	// Invalid indicates the step does not satisfy the rule.
	Invalid
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "Valid"
	case Invalid:
		return "Invalid"
	default:
		return "?"
	}
}

// ReasonCode classifies why a step was rejected.
type ReasonCode int

const (
	ReasonNone ReasonCode = iota
	// ReasonPremiseCount: wrong number of premises for the rule.
	ReasonPremiseCount
	// ReasonPremiseShape: wrong plain/subproof mix for the rule.
	ReasonPremiseShape
	// ReasonRuleViolation: the step does not match the rule's pattern.
	ReasonRuleViolation
)

func (r ReasonCode) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonPremiseCount:
		return "wrong number of premises"
	case ReasonPremiseShape:
		return "wrong premise shape"
	case ReasonRuleViolation:
		return "rule violation"
	default:
		return "unknown"
	}
}

// Report is the result of verifying one claim. Detail is a human-readable
// diagnostic safe to display verbatim; it is always specific, never a bare
// "invalid". Logical mistakes in user input always arrive here as a
// Report, never as a Go error or panic.
type Report struct {
	Verdict Verdict
	Reason  ReasonCode
	Detail  string
}

// ValidReport marks a step as licensed by its rule.
func ValidReport() Report {
	return Report{Verdict: Valid}
}

// ViolationReport rejects a step with a rule-specific diagnostic.
func ViolationReport(detail string) Report {
	return Report{Verdict: Invalid, Reason: ReasonRuleViolation, Detail: detail}
}

// PremiseCountReport rejects a step before rule dispatch because the
// premise count is off.
func PremiseCountReport(detail string) Report {
	return Report{Verdict: Invalid, Reason: ReasonPremiseCount, Detail: detail}
}

// PremiseShapeReport rejects a step before rule dispatch because the
// plain/subproof mix is off.
func PremiseShapeReport(detail string) Report {
	return Report{Verdict: Invalid, Reason: ReasonPremiseShape, Detail: detail}
}

// IsValid reports whether the step was accepted.
func (r Report) IsValid() bool {
	return r.Verdict == Valid
}

// String returns the verdict, with the diagnostic when invalid.
func (r Report) String() string {
	if r.Verdict == Valid {
		return "Valid"
	}
	return "Invalid: " + r.Detail
}
