package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "primeseed", cmd.Use)
	assert.Contains(t, cmd.Long, "twin-prime")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"find", "seed", "verify", "list", "profile"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestSeedCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)

	agentsFlag := seedCmd.Flags().Lookup("agents")
	require.NotNil(t, agentsFlag)
	assert.Equal(t, "10", agentsFlag.DefValue)

	ampFlag := seedCmd.Flags().Lookup("amplification")
	require.NotNil(t, ampFlag)
	assert.Equal(t, "0.001", ampFlag.DefValue)

	outputFlag := seedCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	require.NotNil(t, seedCmd.Flags().Lookup("seed-override"))
	require.NotNil(t, seedCmd.Flags().Lookup("profile"))
	require.NotNil(t, seedCmd.Flags().Lookup("db"))
}

func TestVerifyCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	verifyCmd, _, err := cmd.Find([]string{"verify"})
	require.NoError(t, err)

	dbFlag := verifyCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	// --db is required, so default is empty
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestListCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	listCmd, _, err := cmd.Find([]string{"list"})
	require.NoError(t, err)

	require.NotNil(t, listCmd.Flags().Lookup("db"))
}

func TestProfileCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	profileCmd, _, err := cmd.Find([]string{"profile"})
	require.NoError(t, err)

	collectFlag := profileCmd.Flags().Lookup("collect-all")
	require.NotNil(t, collectFlag)
	assert.Equal(t, "false", collectFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"find", "100", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestValidFormatsAccepted(t *testing.T) {
	for _, format := range ValidFormats {
		t.Run(format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewRootCommand()
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"find", "100", "--format", format})

			err := cmd.Execute()
			require.NoError(t, err)
			assert.NotEmpty(t, buf.String())
		})
	}
}
