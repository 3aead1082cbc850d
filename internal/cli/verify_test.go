package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaoslab/primeseed/internal/store"
)

func runVerifyCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewVerifyCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func seedTestDatabase(t *testing.T) (string, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "seeds.db")
	output, err := runSeedCommand(t, "json", "100", "--agents", "8", "--db", dbPath)
	require.NoError(t, err)
	return dbPath, decodeSeedResult(t, output).BatchID
}

func TestVerifyCleanBatch(t *testing.T) {
	dbPath, batchID := seedTestDatabase(t)

	output, err := runVerifyCommand(t, "text", batchID, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, output, "✓ Batch")
	assert.Contains(t, output, "8 seed(s) replayed bit-for-bit")
}

func TestVerifyCleanBatchJSON(t *testing.T) {
	dbPath, batchID := seedTestDatabase(t)

	output, err := runVerifyCommand(t, "json", batchID, "--db", dbPath)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, merr := json.Marshal(resp.Data)
	require.NoError(t, merr)
	var result store.VerifyResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.True(t, result.Match)
	assert.Equal(t, 8, result.SeedCount)
}

func TestVerifyCorruptedBatch(t *testing.T) {
	dbPath, batchID := seedTestDatabase(t)

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	_, err = s.DB().Exec(
		"UPDATE seeds SET position_bits = position_bits + 1 WHERE agent_index = 3")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	output, verr := runVerifyCommand(t, "text", batchID, "--db", dbPath)
	require.Error(t, verr)
	assert.Equal(t, ExitFailure, GetExitCode(verr))
	assert.Contains(t, output, "Error [VERIFY_FAILED]")
	assert.Contains(t, output, "agent 3 position")
}

func TestVerifyUnknownBatch(t *testing.T) {
	dbPath, _ := seedTestDatabase(t)

	output, err := runVerifyCommand(t, "text", "no-such-batch", "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, output, "Error [STORE_ERROR]")
}
