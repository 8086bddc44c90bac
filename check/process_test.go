package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proof.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProof), 0o644))

	results, err := ProcessFiles(context.Background(), zap.NewNop(), newTestChecker(t), []string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].Path)
	assert.Len(t, results[0].Results, 3)
	assert.Equal(t, 0, results[0].InvalidCount())
}

func TestProcessPathWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(sampleProof), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte(sampleProof), 0o644))
	// non-proof files are skipped
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	results, err := ProcessPath(context.Background(), zap.NewNop(), newTestChecker(t), dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	// results come back sorted by path
	assert.Equal(t, filepath.Join(dir, "a.yaml"), results[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.yml"), results[1].Path)
}

func TestProcessPathRejectsNonProofFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := ProcessFiles(context.Background(), zap.NewNop(), newTestChecker(t), []string{path})
	require.Error(t, err)
}
