package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/chaoslab/primeseed/internal/prime"
)

// Snapshot captures a scenario result for golden comparison.
//
// Floats are rendered as fixed-precision decimal strings, NOT bit patterns:
// position to 6 decimals, velocity to 9. Golden files must survive
// last-ulp differences between math-library implementations of exp/log;
// bit-level determinism is asserted separately via deterministic_rerun.
type Snapshot struct {
	ScenarioName string
	Max          int64
	NumAgents    int
	Pairs        []prime.Pair
	Seeds        []SeedSnapshot
}

// SeedSnapshot is the golden-stable rendering of one seed.
type SeedSnapshot struct {
	Index    int
	IsUpper  bool
	Pair     prime.Pair
	Position string
	Velocity string
}

// BuildSnapshot renders a result into its golden-stable form.
func BuildSnapshot(scenario *Scenario, result *Result) Snapshot {
	snap := Snapshot{
		ScenarioName: scenario.Name,
		Max:          scenario.Max,
		NumAgents:    scenario.Agents,
		Pairs:        result.Pairs,
	}
	for _, s := range result.Seeds {
		snap.Seeds = append(snap.Seeds, SeedSnapshot{
			Index:    s.Index,
			IsUpper:  s.IsUpper,
			Pair:     s.Pair,
			Position: fmt.Sprintf("%.6f", s.Position),
			Velocity: fmt.Sprintf("%.9f", s.Velocity),
		})
	}
	return snap
}

// toCanonical converts the snapshot to the canonical value model so the
// golden bytes are deterministic (sorted keys, stable encodings).
// The seeds key is omitted entirely for discovery-only scenarios: canonical
// form has no null and no empty-for-absent ambiguity.
func (s Snapshot) toCanonical() prime.VObject {
	pairs := make(prime.VArray, len(s.Pairs))
	for i, p := range s.Pairs {
		pairs[i] = prime.VArray{prime.VInt(p.Lower), prime.VInt(p.Upper)}
	}

	obj := prime.VObject{
		"scenario_name": prime.VString(s.ScenarioName),
		"max":           prime.VInt(s.Max),
		"num_agents":    prime.VInt(int64(s.NumAgents)),
		"pairs":         pairs,
	}

	if len(s.Seeds) > 0 {
		seeds := make(prime.VArray, len(s.Seeds))
		for i, sd := range s.Seeds {
			seeds[i] = prime.VObject{
				"index":    prime.VInt(int64(sd.Index)),
				"is_upper": prime.VBool(sd.IsUpper),
				"pair":     prime.VArray{prime.VInt(sd.Pair.Lower), prime.VInt(sd.Pair.Upper)},
				"position": prime.VString(sd.Position),
				"velocity": prime.VString(sd.Velocity),
			}
		}
		obj["seeds"] = seeds
	}

	return obj
}

// MarshalCanonical returns the canonical JSON bytes of the snapshot.
func (s Snapshot) MarshalCanonical() ([]byte, error) {
	return prime.MarshalCanonical(s.toCanonical())
}

// RunWithGolden executes a scenario and compares its snapshot against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution or an assertion fails; golden
// divergence fails the test via goldie.
func (h *Harness) RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := h.Run(scenario)
	if err != nil {
		return err
	}
	if !result.Pass {
		return fmt.Errorf("scenario %q: %d assertion(s) failed: %v", scenario.Name, len(result.Errors), result.Errors)
	}

	snapshotJSON, err := BuildSnapshot(scenario, result).MarshalCanonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshotJSON)

	return nil
}
