package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prooflab/stepcheck/internal/logic"
)

func mustAnd(t *testing.T, es ...*logic.Expr) *logic.Expr {
	t.Helper()
	e, err := logic.NewExpr(logic.OpAnd, es...)
	require.NoError(t, err)
	return e
}

func TestVerifyStep(t *testing.T) {
	p, q := logic.NewAtom("P"), logic.NewAtom("Q")

	report, err := VerifyStep("MODUS_PONENS", q,
		[]logic.Premise{logic.NewPremise(logic.Implies(p, q)), logic.NewPremise(p)})
	require.NoError(t, err)
	assert.True(t, report.IsValid())

	report, err = VerifyStep("MODUS_PONENS", p,
		[]logic.Premise{logic.NewPremise(logic.Implies(p, q)), logic.NewPremise(p)})
	require.NoError(t, err)
	assert.False(t, report.IsValid())
	assert.NotEmpty(t, report.Detail)

	_, err = VerifyStep("NO_SUCH_RULE", q, nil)
	require.Error(t, err)
}

func TestSuggestAutoFill(t *testing.T) {
	p, q := logic.NewAtom("P"), logic.NewAtom("Q")

	seq, ok, err := SuggestAutoFill("SIMPLIFICATION",
		[]logic.Premise{logic.NewPremise(mustAnd(t, p, q))})
	require.NoError(t, err)
	require.True(t, ok)
	var got []string
	for s := range seq {
		got = append(got, s)
	}
	assert.Equal(t, []string{"P", "Q"}, got)

	// rule without the capability: not applicable, no error
	_, ok, err = SuggestAutoFill("ADDITION", []logic.Premise{logic.NewPremise(p)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewCheckerWithConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".stepcheck.yaml")
	config := []byte("name: stepcheck\nallowed-rules:\n  - REITERATION\n  - MODUS_PONENS\n")
	require.NoError(t, os.WriteFile(path, config, 0o644))

	checker, err := New(path, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, checker.RuleAllowed("REITERATION"))
	assert.True(t, checker.RuleAllowed("MODUS_PONENS"))
	assert.False(t, checker.RuleAllowed("SIMPLIFICATION"))

	// no configuration: everything allowed
	open, err := New("", zap.NewNop())
	require.NoError(t, err)
	assert.True(t, open.RuleAllowed("SIMPLIFICATION"))
}

func TestNewCheckerRejectsUnknownRuleInConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".stepcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("allowed-rules: [NO_SUCH_RULE]\n"), 0o644))

	_, err := New(path, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_SUCH_RULE")
}
