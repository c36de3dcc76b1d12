package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	results := sampleResults()

	require.NoError(
		t, AppendToHistory(path, results[0], "/tmp/r1"),
	)
	require.NoError(
		t, AppendToHistory(path, results[1], "/tmp/r2"),
	)

	entries, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "login", entries[0].SuiteID)
	assert.Equal(t, 2, entries[0].StepsPassed)
	assert.Equal(t, "/tmp/r1", entries[0].ResultsPath)

	assert.Equal(t, "dashboard", entries[1].SuiteID)
	assert.Equal(t, 1, entries[1].StepsPassed)
	assert.Equal(t, 2, entries[1].StepsTotal)
}

func TestLoadHistory_Missing(t *testing.T) {
	entries, err := LoadHistory(
		filepath.Join(t.TempDir(), "none.jsonl"),
	)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadHistory_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	results := sampleResults()

	require.NoError(
		t, AppendToHistory(path, results[0], ""),
	)

	f, err := os.OpenFile(
		path, os.O_APPEND|os.O_WRONLY, 0644,
	)
	require.NoError(t, err)
	_, err = f.WriteString("{broken\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, err := LoadHistory(path)
	require.Error(t, err)
	assert.Len(t, entries, 1)
}
