package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaoslab/primeseed/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	DBPath string
}

// ListResult is the payload of the list command.
type ListResult struct {
	Count   int                  `json:"count"`
	Batches []store.BatchSummary `json:"batches"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stored batches in insertion order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite database to list (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
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

	batches, err := s.ListBatches(context.Background())
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list failed", err)
	}

	result := ListResult{Count: len(batches), Batches: batches}
	return formatter.SuccessText(renderListText(result), result)
}

func renderListText(r ListResult) string {
	if r.Count == 0 {
		return "No batches stored\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "✓ %d batch(es)\n", r.Count)
	for _, batch := range r.Batches {
		fmt.Fprintf(&b, "  %3d  %s  bound %-8d agents %-4d hash %s\n",
			batch.CreatedSeq, batch.ID, batch.MaxBound, batch.NumAgents, batch.BatchHash[:12])
	}
	return b.String()
}
