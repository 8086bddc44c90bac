// Package rules implements the inference-rule catalogue and the shared
// verification driver. Each rule is a stateless singleton that performs a
// small structural match against its premises and conclusion and answers
// with a specific diagnostic on failure. Adding a rule means adding one
// file with one struct and one registry entry; the driver never changes.
package rules

import (
	"iter"

	"github.com/prooflab/stepcheck/internal/logic"
)

// RuleType classifies a rule for UI grouping. It plays no part in
// verification.
type RuleType int

const (
	Inference RuleType = iota
	Elim
	Intro
)

func (t RuleType) String() string {
	switch t {
	case Inference:
		return "inference"
	case Elim:
		return "elim"
	case Intro:
		return "intro"
	default:
		return "?"
	}
}

// Rule is the contract every inference rule implements. Implementations
// are stateless; a single value serves all goroutines for the process
// lifetime.
type Rule interface {
	// Name returns the full display name.
	Name() string

	// ShortName returns the compact display name.
	ShortName() string

	// Types returns the UI-grouping tags.
	Types() []RuleType

	// RequiredPremises returns how many premises the rule needs for the
	// given claim. Most rules are fixed-arity; claim-dependent rules
	// (n-ary conjunction introduction) inspect the conclusion. A nil
	// claim yields the rule's default arity.
	RequiredPremises(c *logic.Claim) int

	// SubproofPremises returns how many of the required premises must be
	// subproof-shaped. Subproof slots occupy the trailing positions.
	SubproofPremises(c *logic.Claim) int

	// AllowsReordering reports whether the rule's match is insensitive to
	// the order its premises are supplied in. Reorder-tolerant rules
	// locate premises by shape internally; the driver never permutes.
	AllowsReordering() bool

	// CanAutoFill reports whether the rule can propose conclusions.
	CanAutoFill() bool

	// AutoFill proposes conclusion texts for the given premises as a
	// finite lazy sequence. The second result is false when the premise
	// shape does not match the rule's pattern — distinct from an
	// applicable rule yielding no suggestions. Partial consumption is
	// safe and has no observable effect.
	AutoFill(premises []logic.Premise) (iter.Seq[string], bool)

	// Verify checks whether the rule licenses the step. The premise
	// count and plain/subproof mix have already been gated by the
	// driver; implementations may index premises freely within the
	// declared arity. Logically wrong input always yields an Invalid
	// report with a diagnostic, never a panic.
	Verify(conclusion *logic.Expr, premises []logic.Premise) logic.Report
}

// noAutoFill is embedded by rules that cannot propose conclusions.
type noAutoFill struct{}

func (noAutoFill) CanAutoFill() bool { return false }

func (noAutoFill) AutoFill([]logic.Premise) (iter.Seq[string], bool) { return nil, false }

// noSubproofs is embedded by rules whose premises are all plain.
type noSubproofs struct{}

func (noSubproofs) SubproofPremises(*logic.Claim) int { return 0 }

// oneSuggestion wraps a single proposal as a lazy sequence.
func oneSuggestion(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(s)
	}
}

// renderAll yields the canonical form of each expression in order.
func renderAll(exprs []*logic.Expr) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range exprs {
			if !yield(e.Render()) {
				return
			}
		}
	}
}
