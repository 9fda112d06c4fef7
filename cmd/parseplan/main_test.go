package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderplan/internal/domain"
	"wanderplan/internal/tripplan"
)

func writeDocument(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "plan.md")
	require.NoError(t, os.WriteFile(path, []byte("# Oslo Weekend\nA short trip to Oslo!"), 0o600))
	return path
}

func TestRun_UnknownFormatCreatesNoOutput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.pdf")

	err := run(writeDocument(t, dir), "pdf", outPath, defaultMaxBytes)

	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.json")

	require.NoError(t, run(writeDocument(t, dir), "json", outPath, defaultMaxBytes))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var plan tripplan.TripPlan
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.Equal(t, "Oslo Weekend", plan.Title)
}

func TestRun_RejectsOversizedDocument(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.csv")

	err := run(writeDocument(t, dir), "csv", outPath, 8)

	assert.ErrorIs(t, err, domain.ErrDocumentTooLarge)
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}
