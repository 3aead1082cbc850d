package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaoslab/primeseed/internal/prime"
	"github.com/chaoslab/primeseed/internal/profile"
	"github.com/chaoslab/primeseed/internal/seed"
	"github.com/chaoslab/primeseed/internal/store"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Agents        int
	Amplification float64
	SeedOverride  uint64
	ProfileDir    string
	ProfileName   string
	DBPath        string
	Output        string
}

// SeedResult is the payload of the seed command.
type SeedResult struct {
	Max           int64       `json:"max"`
	NumAgents     int         `json:"num_agents"`
	Amplification float64     `json:"amplification"`
	SeedOverride  uint64      `json:"seed_override"`
	PairCount     int         `json:"pair_count"`
	BatchHash     string      `json:"batch_hash"`
	BatchID       string      `json:"batch_id,omitempty"` // set when persisted
	ProfileHash   string      `json:"profile_hash,omitempty"`
	Seeds         []seed.Seed `json:"seeds"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed [n]",
		Short: "Derive chaos seeds from twin primes",
		Long: `Run the full pipeline: enumerate twin primes up to n, then derive one
chaos seed per agent by cyclic pair assignment.

Parameters come either from flags with a positional bound, or from a CUE
profile directory (--profile). With --db the batch is persisted for later
replay verification.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Agents, "agents", 10, "number of seeds to derive")
	cmd.Flags().Float64Var(&opts.Amplification, "amplification", seed.DefaultAmplification, "chaos amplification scalar")
	cmd.Flags().Uint64Var(&opts.SeedOverride, "seed-override", 0, "velocity hash seed override")
	cmd.Flags().StringVar(&opts.ProfileDir, "profile", "", "CUE profile directory (replaces flags and bound)")
	cmd.Flags().StringVar(&opts.ProfileName, "name", "", "profile name when the directory holds several")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite database to persist the batch")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the batch as JSON to a file")

	return cmd
}

func runSeed(opts *SeedOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var (
		maxBound    int64
		agents      int
		cfg         seed.Config
		profileHash string
	)

	switch {
	case opts.ProfileDir != "":
		if len(args) > 0 {
			formatter.Error(ErrCodeBadArgument, "pass either a bound or --profile, not both", nil)
			return NewExitError(ExitCommandError, "conflicting parameters")
		}
		p, err := resolveProfile(opts.ProfileDir, opts.ProfileName)
		if err != nil {
			formatter.Error(ErrCodeProfile, err.Error(), nil)
			return WrapExitError(ExitCommandError, "profile load failed", err)
		}
		maxBound = p.Max
		agents = p.Agents
		cfg = p.Config()
		profileHash, err = p.Hash()
		if err != nil {
			formatter.Error(ErrCodeProfile, err.Error(), nil)
			return WrapExitError(ExitCommandError, "profile hash failed", err)
		}
		formatter.VerboseLog("using profile %q (hash %s)", p.Name, profileHash[:12])

	case len(args) == 1:
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			formatter.Error(ErrCodeBadArgument, fmt.Sprintf("bound %q is not an integer", args[0]), nil)
			return NewExitError(ExitCommandError, "invalid bound")
		}
		maxBound = n
		agents = opts.Agents
		cfg = seed.Config{
			Amplification: opts.Amplification,
			SeedOverride:  opts.SeedOverride,
			Weights:       seed.DefaultWeights(),
		}

	default:
		formatter.Error(ErrCodeBadArgument, "need a bound argument or --profile", nil)
		return NewExitError(ExitCommandError, "missing parameters")
	}

	pairs, err := prime.FindTwinPrimes(maxBound)
	if err != nil {
		formatter.Error(ErrCodePipeline, err.Error(), nil)
		return WrapExitError(ExitCommandError, "discovery failed", err)
	}
	seeds, err := seed.BuildBatch(pairs, agents, cfg)
	if err != nil {
		formatter.Error(ErrCodePipeline, err.Error(), nil)
		return WrapExitError(ExitCommandError, "batch derivation failed", err)
	}

	batchHash, err := seed.BatchID(maxBound, agents, cfg, seeds)
	if err != nil {
		formatter.Error(ErrCodePipeline, err.Error(), nil)
		return WrapExitError(ExitCommandError, "batch hash failed", err)
	}

	result := SeedResult{
		Max:           maxBound,
		NumAgents:     agents,
		Amplification: cfg.Amplification,
		SeedOverride:  cfg.SeedOverride,
		PairCount:     len(pairs),
		BatchHash:     batchHash,
		ProfileHash:   profileHash,
		Seeds:         seeds,
	}

	if opts.DBPath != "" {
		id, err := persistBatch(opts.DBPath, maxBound, agents, cfg, profileHash, seeds)
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "persist failed", err)
		}
		result.BatchID = id
		formatter.VerboseLog("persisted batch %s to %s", id, opts.DBPath)
	}

	if opts.Output != "" {
		if err := writeBatchJSON(result, opts.Output); err != nil {
			formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "write failed", err)
		}
	}

	return formatter.SuccessText(renderSeedText(result), result)
}

// resolveProfile loads a profile directory and picks one profile: by name
// when given, otherwise the directory must hold exactly one.
func resolveProfile(dir, name string) (profile.Profile, error) {
	result, errs := profile.Load(dir, profile.LoadModeFailFast)
	if len(errs) > 0 {
		return profile.Profile{}, errs[0]
	}

	if name == "" {
		if len(result.Profiles) != 1 {
			return profile.Profile{}, fmt.Errorf("directory holds %d profiles; pick one with --name", len(result.Profiles))
		}
		return result.Profiles[0], nil
	}

	for _, p := range result.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return profile.Profile{}, fmt.Errorf("no profile named %q in %s", name, dir)
}

func persistBatch(dbPath string, maxBound int64, agents int, cfg seed.Config, profileHash string, seeds []seed.Seed) (string, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer s.Close()

	rec, err := store.NewBatchRecord(maxBound, agents, cfg, profileHash, seeds)
	if err != nil {
		return "", err
	}
	return s.WriteBatch(context.Background(), rec)
}

func writeBatchJSON(result SeedResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func renderSeedText(r SeedResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ Derived %d seed(s) from %d pair(s) (bound %d, amplification %g)\n",
		len(r.Seeds), r.PairCount, r.Max, r.Amplification)
	fmt.Fprintf(&b, "  batch hash %s\n", r.BatchHash)
	if r.BatchID != "" {
		fmt.Fprintf(&b, "  persisted as %s\n", r.BatchID)
	}
	for _, s := range r.Seeds {
		anchor := "lower"
		if s.IsUpper {
			anchor = "upper"
		}
		fmt.Fprintf(&b, "  agent %3d  pair (%d, %d)  anchor %-5s  position %.6f  velocity %.9f\n",
			s.Index, s.Pair.Lower, s.Pair.Upper, anchor, s.Position, s.Velocity)
	}
	return b.String()
}
