package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewFindCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"100"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "✓ Found 8 twin-prime pair(s)")
	assert.Contains(t, output, "(3, 5)")
	assert.Contains(t, output, "(71, 73)")
}

func TestFindJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewFindCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"100"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result FindResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, int64(100), result.Max)
	assert.Equal(t, 8, result.Count)
	require.Len(t, result.Pairs, 8)
	assert.Equal(t, int64(3), result.Pairs[0].Lower)
	assert.Equal(t, int64(73), result.Pairs[7].Upper)
}

func TestFindInclusiveBound(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewFindCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"13"})

	err := cmd.Execute()
	require.NoError(t, err)
	// (11, 13) included when the bound equals the upper member
	assert.Contains(t, buf.String(), "(11, 13)")
}

func TestFindBadBound(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewFindCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [PIPELINE_ERROR]")
}

func TestFindNonNumericBound(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewFindCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"abc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [BAD_ARGUMENT]")
}
