package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/chaoslab/primeseed/internal/prime"
	"github.com/chaoslab/primeseed/internal/seed"
)

// Assertion type names accepted in scenario YAML.
const (
	AssertPairCount          = "pair_count"
	AssertPairsInclude       = "pairs_include"
	AssertSeedCount          = "seed_count"
	AssertPositionBounds     = "position_bounds"
	AssertAlternatingAnchor  = "alternating_anchor"
	AssertDeterministicRerun = "deterministic_rerun"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // assertion type for categorization
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	return buf.String()
}

// evaluate dispatches one assertion against a pipeline result.
// Scenario.Validate has already rejected unknown types and seed assertions
// on discovery-only scenarios.
func evaluate(scenario *Scenario, result *Result, a Assertion) error {
	switch a.Type {
	case AssertPairCount:
		return assertPairCount(result.Pairs, a.Count)
	case AssertPairsInclude:
		return assertPairsInclude(result.Pairs, a.Pairs)
	case AssertSeedCount:
		return assertSeedCount(result.Seeds, a.Count)
	case AssertPositionBounds:
		return assertPositionBounds(result.Seeds)
	case AssertAlternatingAnchor:
		return assertAlternatingAnchor(result.Seeds)
	case AssertDeterministicRerun:
		return assertDeterministicRerun(scenario, result.Seeds)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertPairCount(pairs []prime.Pair, want int) error {
	if len(pairs) == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertPairCount,
		Expected: fmt.Sprintf("%d twin-prime pairs", want),
		Actual:   fmt.Sprintf("%d pairs", len(pairs)),
	}
}

func assertPairsInclude(pairs []prime.Pair, want [][2]int64) error {
	have := make(map[prime.Pair]bool, len(pairs))
	for _, p := range pairs {
		have[p] = true
	}
	for _, w := range want {
		if !have[prime.Pair{Lower: w[0], Upper: w[1]}] {
			return &AssertionError{
				Type:     AssertPairsInclude,
				Expected: fmt.Sprintf("pair (%d, %d) in discovery result", w[0], w[1]),
				Actual:   "not found",
			}
		}
	}
	return nil
}

func assertSeedCount(seeds []seed.Seed, want int) error {
	if len(seeds) == want {
		return nil
	}
	return &AssertionError{
		Type:     AssertSeedCount,
		Expected: fmt.Sprintf("%d seeds", want),
		Actual:   fmt.Sprintf("%d seeds", len(seeds)),
	}
}

func assertPositionBounds(seeds []seed.Seed) error {
	const halfWidth = seed.PerturbationSpan / 2
	for _, s := range seeds {
		if s.Position < 0 || s.Position > math.Pi {
			return &AssertionError{
				Type:     AssertPositionBounds,
				Expected: "position in [0, pi]",
				Actual:   fmt.Sprintf("agent %d: position %v", s.Index, s.Position),
			}
		}
		if math.Abs(s.Position-seed.TargetCenter) > halfWidth {
			return &AssertionError{
				Type:     AssertPositionBounds,
				Expected: fmt.Sprintf("position within %v of %v", halfWidth, seed.TargetCenter),
				Actual:   fmt.Sprintf("agent %d: position %v", s.Index, s.Position),
			}
		}
	}
	return nil
}

func assertAlternatingAnchor(seeds []seed.Seed) error {
	for _, s := range seeds {
		want := s.Index%2 == 1
		if s.IsUpper != want {
			return &AssertionError{
				Type:     AssertAlternatingAnchor,
				Expected: fmt.Sprintf("agent %d anchored on is_upper=%t", s.Index, want),
				Actual:   fmt.Sprintf("is_upper=%t", s.IsUpper),
			}
		}
	}
	return nil
}

// assertDeterministicRerun re-executes the full pipeline and compares every
// seed bit-for-bit against the first run.
func assertDeterministicRerun(scenario *Scenario, seeds []seed.Seed) error {
	pairs, err := prime.FindTwinPrimes(scenario.Max)
	if err != nil {
		return err
	}
	rerun, err := seed.BuildBatch(pairs, scenario.Agents, scenario.Config())
	if err != nil {
		return err
	}
	if len(rerun) != len(seeds) {
		return &AssertionError{
			Type:     AssertDeterministicRerun,
			Expected: fmt.Sprintf("%d seeds on rerun", len(seeds)),
			Actual:   fmt.Sprintf("%d seeds", len(rerun)),
		}
	}
	for i := range seeds {
		a, b := seeds[i], rerun[i]
		if a.Pair != b.Pair || a.IsUpper != b.IsUpper ||
			math.Float64bits(a.Position) != math.Float64bits(b.Position) ||
			math.Float64bits(a.Velocity) != math.Float64bits(b.Velocity) {
			return &AssertionError{
				Type:     AssertDeterministicRerun,
				Expected: fmt.Sprintf("agent %d identical across reruns", i),
				Actual: fmt.Sprintf("position %s vs %s, velocity %s vs %s",
					prime.FormatFloatBits(a.Position), prime.FormatFloatBits(b.Position),
					prime.FormatFloatBits(a.Velocity), prime.FormatFloatBits(b.Velocity)),
			}
		}
	}
	return nil
}
