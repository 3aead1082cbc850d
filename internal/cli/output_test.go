package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(ErrCodePipeline, "derivation failed", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodePipeline, resp.Error.Code)
	assert.Equal(t, "derivation failed", resp.Error.Message)
}

func TestOutputFormatter_SuccessTextPicksFormat(t *testing.T) {
	textBuf := &bytes.Buffer{}
	textFormatter := &OutputFormatter{Format: "text", Writer: textBuf}
	err := textFormatter.SuccessText("✓ 8 pair(s)\n", map[string]int{"count": 8})
	require.NoError(t, err)
	assert.Equal(t, "✓ 8 pair(s)\n", textBuf.String())

	jsonBuf := &bytes.Buffer{}
	jsonFormatter := &OutputFormatter{Format: "json", Writer: jsonBuf}
	err = jsonFormatter.SuccessText("✓ 8 pair(s)\n", map[string]int{"count": 8})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeStore, "database locked", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [STORE_ERROR]: database locked")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "json",
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   true,
	}

	formatter.VerboseLog("sieved %d numbers", 100)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "sieved 100 numbers")

	quiet := &OutputFormatter{Format: "text", Writer: out, Verbose: false}
	quiet.VerboseLog("should not appear")
	assert.Empty(t, out.String())
}

func TestExitErrorCodes(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad args")))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "mismatch")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))

	wrapped := WrapExitError(ExitCommandError, "store open failed", errors.New("no such file"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Contains(t, wrapped.Error(), "store open failed: no such file")
	assert.EqualError(t, errors.Unwrap(wrapped), "no such file")
}
