package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaoslab/primeseed/internal/profile"
)

// ProfileOptions holds flags for the profile command.
type ProfileOptions struct {
	*RootOptions
	CollectAll bool
}

// ProfileEntry is one validated profile in the profile command payload.
type ProfileEntry struct {
	Name          string  `json:"name"`
	Max           int64   `json:"max"`
	Agents        int     `json:"agents"`
	Amplification float64 `json:"amplification"`
	SeedOverride  uint64  `json:"seed_override"`
	Hash          string  `json:"hash"`
}

// ProfileResult is the payload of the profile command.
type ProfileResult struct {
	Dir       string         `json:"dir"`
	FileCount int            `json:"file_count"`
	Profiles  []ProfileEntry `json:"profiles"`
	Errors    []string       `json:"errors,omitempty"`
}

// NewProfileCommand creates the profile command.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProfileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "profile <dir>",
		Short: "Load and validate CUE profiles",
		Long: `Compile every CUE file in a directory, validate the declared profiles,
and print each profile's resolved parameters and configuration hash. Two
profiles with the same hash derive identical batches.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.CollectAll, "collect-all", false, "report every invalid file instead of stopping at the first")

	return cmd
}

func runProfile(opts *ProfileOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	mode := profile.LoadModeFailFast
	if opts.CollectAll {
		mode = profile.LoadModeCollectAll
	}

	loaded, errs := profile.Load(dir, mode)
	if loaded == nil {
		formatter.Error(ErrCodeProfile, errs[0].Error(), nil)
		return WrapExitError(ExitCommandError, "profile load failed", errs[0])
	}

	result := ProfileResult{Dir: dir, FileCount: loaded.FileCount}
	for _, e := range errs {
		result.Errors = append(result.Errors, e.Error())
	}
	for _, p := range loaded.Profiles {
		hash, err := p.Hash()
		if err != nil {
			formatter.Error(ErrCodeProfile, err.Error(), nil)
			return WrapExitError(ExitCommandError, "profile hash failed", err)
		}
		cfg := p.Config()
		result.Profiles = append(result.Profiles, ProfileEntry{
			Name:          p.Name,
			Max:           p.Max,
			Agents:        p.Agents,
			Amplification: cfg.Amplification,
			SeedOverride:  cfg.SeedOverride,
			Hash:          hash,
		})
	}

	if len(errs) > 0 && !opts.CollectAll {
		formatter.Error(ErrCodeProfile, errs[0].Error(), result)
		return WrapExitError(ExitCommandError, "profile load failed", errs[0])
	}

	return formatter.SuccessText(renderProfileText(result), result)
}

func renderProfileText(r ProfileResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ %d profile(s) from %d file(s) in %s\n", len(r.Profiles), r.FileCount, r.Dir)
	for _, p := range r.Profiles {
		fmt.Fprintf(&b, "  %-16s bound %-8d agents %-4d amplification %-10g hash %s\n",
			p.Name, p.Max, p.Agents, p.Amplification, p.Hash[:12])
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "  ✗ %s\n", e)
	}
	return b.String()
}
