package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSeedCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewSeedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func decodeSeedResult(t *testing.T, output string) SeedResult {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	require.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result SeedResult
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func TestSeedText(t *testing.T) {
	output, err := runSeedCommand(t, "text", "5", "--agents", "4")
	require.NoError(t, err)

	assert.Contains(t, output, "✓ Derived 4 seed(s) from 1 pair(s)")
	assert.Contains(t, output, "pair (3, 5)")
	assert.Contains(t, output, "anchor lower")
	assert.Contains(t, output, "anchor upper")
	assert.Contains(t, output, "position 2.092469")
	assert.Contains(t, output, "position 2.096733")
}

func TestSeedJSON(t *testing.T) {
	output, err := runSeedCommand(t, "json", "100", "--agents", "16")
	require.NoError(t, err)

	result := decodeSeedResult(t, output)
	assert.Equal(t, int64(100), result.Max)
	assert.Equal(t, 16, result.NumAgents)
	assert.Equal(t, 8, result.PairCount)
	assert.Equal(t, 0.001, result.Amplification)
	assert.NotEmpty(t, result.BatchHash)
	require.Len(t, result.Seeds, 16)
	for i, s := range result.Seeds {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, i%2 == 1, s.IsUpper)
	}
}

func TestSeedDeterministic(t *testing.T) {
	first, err := runSeedCommand(t, "json", "1000", "--agents", "32", "--seed-override", "42")
	require.NoError(t, err)
	second, err := runSeedCommand(t, "json", "1000", "--agents", "32", "--seed-override", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSeedOutputToFile(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "batch.json")

	_, err := runSeedCommand(t, "text", "100", "--agents", "8", "--output", outputFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result SeedResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, int64(100), result.Max)
	require.Len(t, result.Seeds, 8)
}

func TestSeedPersist(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seeds.db")

	output, err := runSeedCommand(t, "json", "100", "--agents", "8", "--db", dbPath)
	require.NoError(t, err)

	result := decodeSeedResult(t, output)
	assert.NotEmpty(t, result.BatchID)

	// same content resolves to the original batch
	again, err := runSeedCommand(t, "json", "100", "--agents", "8", "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, result.BatchID, decodeSeedResult(t, again).BatchID)
}

func TestSeedFromProfile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "baseline.cue"), []byte(`
profile: {
	name:          "baseline"
	max:           100
	agents:        16
	amplification: 0.001
}
`), 0644)
	require.NoError(t, err)

	output, err := runSeedCommand(t, "json", "--profile", dir)
	require.NoError(t, err)

	result := decodeSeedResult(t, output)
	assert.Equal(t, int64(100), result.Max)
	assert.Equal(t, 16, result.NumAgents)
	assert.NotEmpty(t, result.ProfileHash)
	require.Len(t, result.Seeds, 16)
}

func TestSeedProfileAndBoundConflict(t *testing.T) {
	dir := t.TempDir()
	_, err := runSeedCommand(t, "text", "100", "--profile", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSeedEmptyPairSet(t *testing.T) {
	// [2, 4] holds no twin pair, so derivation cannot start
	output, err := runSeedCommand(t, "text", "4", "--agents", "2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, output, "Error [PIPELINE_ERROR]")
}

func TestSeedMissingParameters(t *testing.T) {
	output, err := runSeedCommand(t, "text")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, output, "Error [BAD_ARGUMENT]")
}
