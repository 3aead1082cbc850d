package seed

import (
	"fmt"
	"math"
)

// Fixed constants of the position derivation. These are configuration
// constants of the seeding scheme, documented here rather than re-derived;
// do not tune them.
const (
	// TargetCenter is the center of the position band: 2.0944 rad (120 deg).
	TargetCenter = 2.0944

	// PerturbationSpan is the full width of the logistic perturbation:
	// position = TargetCenter +- (L - 0.5) * PerturbationSpan, giving a
	// half-width of 0.005 rad around the center.
	PerturbationSpan = 0.01

	// DefaultAmplification is the default chaos_amplification scalar
	// applied to the velocity unit sample.
	DefaultAmplification = 0.001
)

// GoldenRatio is phi = (1+sqrt(5))/2, one of the three resonance constants
// (with math.Pi and math.E) used by the resonance sub-score.
const GoldenRatio = 1.618033988749895

// weightSumTolerance bounds the allowed drift of the four sub-score
// weights from an exact sum of 1.
const weightSumTolerance = 1e-9

// Weights holds the fixed weighted-combination coefficients for the four
// position sub-scores. Each weight is in [0,1] and the four sum to 1.
type Weights struct {
	FactorStructure float64 `json:"factor_structure" yaml:"factor_structure"`
	TwinProximity   float64 `json:"twin_proximity" yaml:"twin_proximity"`
	Resonance       float64 `json:"resonance" yaml:"resonance"`
	LocalGap        float64 `json:"local_gap" yaml:"local_gap"`
}

// DefaultWeights returns the canonical 0.3/0.25/0.25/0.2 weighting.
func DefaultWeights() Weights {
	return Weights{
		FactorStructure: 0.3,
		TwinProximity:   0.25,
		Resonance:       0.25,
		LocalGap:        0.2,
	}
}

// Validate checks that every weight is in [0,1] and the sum is 1 within
// weightSumTolerance.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"factor_structure": w.FactorStructure,
		"twin_proximity":   w.TwinProximity,
		"resonance":        w.Resonance,
		"local_gap":        w.LocalGap,
	} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return &GenerationError{
				Code:    ErrCodeInvalidWeights,
				Message: fmt.Sprintf("weight %s = %v is outside [0,1]", name, v),
			}
		}
	}
	sum := w.FactorStructure + w.TwinProximity + w.Resonance + w.LocalGap
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &GenerationError{
			Code:    ErrCodeInvalidWeights,
			Message: fmt.Sprintf("weights sum to %v, want 1", sum),
		}
	}
	return nil
}

// Config holds the generation parameters. The zero value is NOT valid;
// use DefaultConfig or fill every field and call Validate.
type Config struct {
	// Amplification is the chaos_amplification scalar; must be > 0.
	Amplification float64 `json:"amplification"`

	// SeedOverride perturbs the velocity hash without touching positions.
	// Zero is the canonical default; any value is valid.
	SeedOverride uint64 `json:"seed_override"`

	// Weights are the position sub-score weights.
	Weights Weights `json:"weights"`
}

// DefaultConfig returns the canonical configuration: amplification 0.001,
// zero seed override, 0.3/0.25/0.25/0.2 weights.
func DefaultConfig() Config {
	return Config{
		Amplification: DefaultAmplification,
		Weights:       DefaultWeights(),
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if !(c.Amplification > 0) || math.IsInf(c.Amplification, 0) {
		return &GenerationError{
			Code:    ErrCodeInvalidAmplification,
			Message: fmt.Sprintf("chaos amplification %v must be a positive finite number", c.Amplification),
		}
	}
	return c.Weights.Validate()
}
