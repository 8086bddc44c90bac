package rules

import "fmt"

// Entry pairs a stable rule identifier with its singleton. The catalogue
// order is the order rule pickers should present.
type Entry struct {
	ID   string
	Rule Rule
}

// catalogue is fixed at compile time; append-only across releases because
// stored proofs reference rules by ID.
var catalogue = []Entry{
	{"CONJUNCTION", Conjunction{}},
	{"SIMPLIFICATION", Simplification{}},
	{"HYPOTHETICAL_SYLLOGISM", HypotheticalSyllogism{}},
	{"MODUS_PONENS", ModusPonens{}},
	{"MODUS_TOLLENS", ModusTollens{}},
	{"REITERATION", Reiteration{}},
	{"ADDITION", Addition{}},
	{"DISJUNCTIVE_SYLLOGISM", DisjunctiveSyllogism{}},
	{"CONSTRUCTIVE_DILEMMA", ConstructiveDilemma{}},
	{"EXCLUDED_MIDDLE", ExcludedMiddle{}},
	{"CONDITIONAL_PROOF", ConditionalProof{}},
}

var byID = func() map[string]Rule {
	m := make(map[string]Rule, len(catalogue))
	for _, e := range catalogue {
		m[e.ID] = e.Rule
	}
	return m
}()

// UnknownRuleError reports a lookup with an identifier not in the
// catalogue. This is a collaborator-contract violation; the registry
// never falls back to a default rule.
type UnknownRuleError struct {
	ID string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.ID)
}

// Lookup resolves a rule identifier. O(1) and total: every identifier
// either resolves or yields *UnknownRuleError.
func Lookup(id string) (Rule, error) {
	r, ok := byID[id]
	if !ok {
		return nil, &UnknownRuleError{ID: id}
	}
	return r, nil
}

// All returns the catalogue in presentation order.
func All() []Entry {
	out := make([]Entry, len(catalogue))
	copy(out, catalogue)
	return out
}
