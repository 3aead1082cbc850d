package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaoslab/primeseed/internal/store"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	DBPath string
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <batch-id>",
		Short: "Replay-verify a stored batch",
		Long: `Re-run the full pipeline from a stored batch's parameters and compare
the recomputed seeds against the stored ones bit-for-bit. Any divergence
means the stored data, the parameters, or the binaries differ.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite database holding the batch (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runVerify(opts *VerifyOptions, batchID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "store open failed", err)
	}
	defer s.Close()

	result, err := s.VerifyBatch(context.Background(), batchID)
	if err != nil {
		if store.IsNotFound(err) {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "batch not found", err)
		}
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "verification error", err)
	}

	if !result.Match {
		formatter.Error(ErrCodeVerifyFailed, renderVerifyFailure(result), result)
		return NewExitError(ExitFailure, fmt.Sprintf("batch %s failed verification", batchID))
	}

	return formatter.SuccessText(
		fmt.Sprintf("✓ Batch %s verified: %d seed(s) replayed bit-for-bit\n", result.BatchID, result.SeedCount),
		result,
	)
}

func renderVerifyFailure(r store.VerifyResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "batch %s diverged in %d field(s)", r.BatchID, len(r.Mismatches))
	for _, m := range r.Mismatches {
		fmt.Fprintf(&b, "\n  agent %d %s: stored %s, recomputed %s", m.AgentIndex, m.Field, m.Stored, m.Recomputed)
	}
	return b.String()
}
