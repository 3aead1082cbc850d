package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chaoslab/primeseed/internal/seed"
)

// Scenario defines a conformance test scenario for the seeding pipeline.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Max is the inclusive twin-prime discovery bound.
	Max int64 `yaml:"max"`

	// Agents is the number of seeds to derive. Zero means discovery-only:
	// no batch is built and seed assertions are rejected.
	Agents int `yaml:"agents"`

	// Amplification is the chaos_amplification scalar.
	// Zero means the default 0.001.
	Amplification float64 `yaml:"amplification,omitempty"`

	// SeedOverride perturbs the velocity hash. Optional.
	SeedOverride uint64 `yaml:"seed_override,omitempty"`

	// Assertions validate the pipeline result.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion is one validation step. Which fields apply depends on Type.
type Assertion struct {
	// Type selects the assertion: pair_count, pairs_include, seed_count,
	// position_bounds, alternating_anchor, deterministic_rerun.
	Type string `yaml:"type"`

	// Count is the expected count for pair_count / seed_count.
	Count int `yaml:"count,omitempty"`

	// Pairs lists [lower, upper] values for pairs_include.
	Pairs [][2]int64 `yaml:"pairs,omitempty"`
}

// Config materializes the generation configuration the scenario pins.
func (s *Scenario) Config() seed.Config {
	cfg := seed.DefaultConfig()
	if s.Amplification != 0 {
		cfg.Amplification = s.Amplification
	}
	cfg.SeedOverride = s.SeedOverride
	return cfg
}

// Validate checks scenario well-formedness before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if s.Max < 2 {
		return fmt.Errorf("scenario %q: max %d must be >= 2", s.Name, s.Max)
	}
	if s.Agents < 0 {
		return fmt.Errorf("scenario %q: agents %d must be >= 0", s.Name, s.Agents)
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case AssertPairCount, AssertPairsInclude:
			// discovery assertions are always valid
		case AssertSeedCount, AssertPositionBounds, AssertAlternatingAnchor, AssertDeterministicRerun:
			if s.Agents == 0 {
				return fmt.Errorf("scenario %q: assertion %d (%s) needs agents > 0", s.Name, i, a.Type)
			}
		default:
			return fmt.Errorf("scenario %q: assertion %d has unknown type %q", s.Name, i, a.Type)
		}
	}
	return nil
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return &s, nil
}
