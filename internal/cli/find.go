package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaoslab/primeseed/internal/prime"
)

// FindResult is the payload of the find command.
type FindResult struct {
	Max   int64        `json:"max"`
	Count int          `json:"count"`
	Pairs []prime.Pair `json:"pairs"`
}

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <n>",
		Short: "Enumerate twin-prime pairs with upper member <= n",
		Long: `Enumerate all twin-prime pairs (p, p+2) with p+2 <= n.

Pairs are listed in ascending order of the lower member. The bound is
inclusive on the upper member: find 10 yields (3,5) and (5,7).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runFind(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		formatter.Error(ErrCodeBadArgument, fmt.Sprintf("bound %q is not an integer", arg), nil)
		return NewExitError(ExitCommandError, "invalid bound")
	}

	pairs, err := prime.FindTwinPrimes(n)
	if err != nil {
		formatter.Error(ErrCodePipeline, err.Error(), nil)
		return WrapExitError(ExitCommandError, "discovery failed", err)
	}

	formatter.VerboseLog("sieved [2, %d], found %d twin-prime pair(s)", n, len(pairs))

	result := FindResult{Max: n, Count: len(pairs), Pairs: pairs}
	return formatter.SuccessText(renderFindText(result), result)
}

func renderFindText(r FindResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ Found %d twin-prime pair(s) with upper member <= %d\n", r.Count, r.Max)
	for _, p := range r.Pairs {
		fmt.Fprintf(&b, "  (%d, %d)\n", p.Lower, p.Upper)
	}
	return b.String()
}
