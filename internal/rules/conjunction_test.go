package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflab/stepcheck/internal/logic"
)

func TestConjunctionTwoPremises(t *testing.T) {
	a, b := atom("A"), atom("B")

	assert.True(t, verify(t, "CONJUNCTION", conj(a, b), plain(a, b)).IsValid())

	// the match is order-sensitive: reordered conjuncts do not verify
	report := verify(t, "CONJUNCTION", conj(b, a), plain(a, b))
	assert.False(t, report.IsValid())
	assert.Equal(t, logic.ReasonRuleViolation, report.Reason)
	assert.Contains(t, report.Detail, "does not match")
}

func TestConjunctionNAry(t *testing.T) {
	a, b, c := atom("A"), atom("B"), atom("C")

	assert.True(t, verify(t, "CONJUNCTION", conj(a, b, c), plain(a, b, c)).IsValid())

	// the required premise count follows the conclusion's conjuncts
	report := verify(t, "CONJUNCTION", conj(a, b, c), plain(a, b))
	assert.False(t, report.IsValid())
	assert.Equal(t, logic.ReasonPremiseCount, report.Reason)

	// nested conjunctions in the conclusion are matched flattened
	nested := conj(a, conj(b, c))
	assert.True(t, verify(t, "CONJUNCTION", nested, plain(a, b, c)).IsValid())
}

func TestConjunctionRejectsNonConjunction(t *testing.T) {
	a, b := atom("A"), atom("B")

	report := verify(t, "CONJUNCTION", disj(a, b), plain(a, b))
	assert.False(t, report.IsValid())
	assert.Contains(t, report.Detail, "not a conjunction")
}

func TestConjunctionStrictAboutDoubleNegation(t *testing.T) {
	a, b := atom("A"), atom("B")

	report := verify(t, "CONJUNCTION", conj(neg(neg(a)), b), plain(a, b))
	assert.False(t, report.IsValid())
}

func TestConjunctionAutoFill(t *testing.T) {
	a, b := atom("A"), atom("B")
	r := Conjunction{}

	seq, ok := r.AutoFill(plain(a, b))
	require.True(t, ok)
	var got []string
	for s := range seq {
		got = append(got, s)
	}
	assert.Equal(t, []string{"A ∧ B"}, got)

	// subproof premises do not fit the pattern
	sub := logic.NewSubproofPremise(logic.NewSubproof(b, a))
	_, ok = r.AutoFill([]logic.Premise{logic.NewPremise(a), sub})
	assert.False(t, ok)
}
