package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructiveDilemma(t *testing.T) {
	p, q, r, s := atom("P"), atom("Q"), atom("R"), atom("S")

	premises := plain(disj(p, r), imp(p, q), imp(r, s))
	assert.True(t, verify(t, "CONSTRUCTIVE_DILEMMA", disj(q, s), premises).IsValid())

	// premises located by shape, in any order
	shuffled := plain(imp(r, s), disj(p, r), imp(p, q))
	assert.True(t, verify(t, "CONSTRUCTIVE_DILEMMA", disj(q, s), shuffled).IsValid())

	// the implications may pair with the disjuncts in either assignment
	swappedConds := plain(disj(p, r), imp(r, s), imp(p, q))
	assert.True(t, verify(t, "CONSTRUCTIVE_DILEMMA", disj(q, s), swappedConds).IsValid())
}

func TestConstructiveDilemmaConclusionOrder(t *testing.T) {
	p, q, r, s := atom("P"), atom("Q"), atom("R"), atom("S")

	// the conclusion's disjuncts follow the disjunction premise's order
	premises := plain(disj(p, r), imp(p, q), imp(r, s))
	report := verify(t, "CONSTRUCTIVE_DILEMMA", disj(s, q), premises)
	assert.False(t, report.IsValid())
	assert.Contains(t, report.Detail, "disjunction of the consequents")
}

func TestConstructiveDilemmaDiagnostics(t *testing.T) {
	p, q, r, s := atom("P"), atom("Q"), atom("R"), atom("S")

	report := verify(t, "CONSTRUCTIVE_DILEMMA", disj(q, s), plain(conj(p, r), imp(p, q), imp(r, s)))
	assert.False(t, report.IsValid())
	assert.Contains(t, report.Detail, "one disjunction and two implications")

	report = verify(t, "CONSTRUCTIVE_DILEMMA", disj(q, s), plain(disj(p, r), imp(q, p), imp(r, s)))
	assert.False(t, report.IsValid())
	assert.Contains(t, report.Detail, "antecedents")
}

func TestConstructiveDilemmaAutoFill(t *testing.T) {
	p, q, r, s := atom("P"), atom("Q"), atom("R"), atom("S")
	rule := ConstructiveDilemma{}

	seq, ok := rule.AutoFill(plain(disj(p, r), imp(p, q), imp(r, s)))
	require.True(t, ok)
	var got []string
	for v := range seq {
		got = append(got, v)
	}
	assert.Equal(t, []string{"Q ∨ S"}, got)

	_, ok = rule.AutoFill(plain(disj(p, r), imp(q, p), imp(r, s)))
	assert.False(t, ok)
}
