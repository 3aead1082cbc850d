package profile

import (
	"fmt"

	"github.com/chaoslab/primeseed/internal/prime"
	"github.com/chaoslab/primeseed/internal/seed"
)

// Profile is a validated seeding-run definition.
type Profile struct {
	// Name identifies the profile; unique within a loaded directory.
	Name string `json:"name"`

	// Max is the inclusive sieve bound for twin-prime discovery.
	Max int64 `json:"max"`

	// Agents is the number of chaos seeds to derive.
	Agents int `json:"agents"`

	// Amplification is the chaos_amplification scalar.
	Amplification float64 `json:"amplification"`

	// SeedOverride perturbs the velocity hash; zero is the default.
	SeedOverride uint64 `json:"seed_override"`

	// Weights overrides the sub-score weights when non-nil.
	Weights *seed.Weights `json:"weights,omitempty"`
}

// Validate checks every field against the pipeline's input contracts.
// Collected here rather than deferred to the pipeline so a bad profile is
// reported with its file context at load time.
func (p Profile) Validate() error {
	if p.Name == "" {
		return &LoadError{Code: ErrCodeInvalidProfile, Message: "profile name is empty"}
	}
	if p.Max < 2 {
		return &LoadError{
			Code:    ErrCodeInvalidProfile,
			Message: fmt.Sprintf("profile %q: max %d must be >= 2 (>= 5 to find any pair)", p.Name, p.Max),
		}
	}
	if p.Agents <= 0 {
		return &LoadError{
			Code:    ErrCodeInvalidProfile,
			Message: fmt.Sprintf("profile %q: agents %d must be positive", p.Name, p.Agents),
		}
	}
	if err := p.Config().Validate(); err != nil {
		return &LoadError{
			Code:    ErrCodeInvalidProfile,
			Message: fmt.Sprintf("profile %q: %v", p.Name, err),
		}
	}
	return nil
}

// Config materializes the seed.Config this profile pins.
func (p Profile) Config() seed.Config {
	cfg := seed.Config{
		Amplification: p.Amplification,
		SeedOverride:  p.SeedOverride,
		Weights:       seed.DefaultWeights(),
	}
	if p.Weights != nil {
		cfg.Weights = *p.Weights
	}
	return cfg
}

// Hash computes the content-addressed identity of the profile. Two profiles
// with the same hash produce identical batches.
func (p Profile) Hash() (string, error) {
	cfg := p.Config()
	obj := prime.VObject{
		"name":          prime.VString(p.Name),
		"max":           prime.VInt(p.Max),
		"agents":        prime.VInt(int64(p.Agents)),
		"amplification": prime.VFloat(cfg.Amplification),
		"seed_override": prime.VInt(int64(cfg.SeedOverride)),
		"weights": prime.VObject{
			"factor_structure": prime.VFloat(cfg.Weights.FactorStructure),
			"twin_proximity":   prime.VFloat(cfg.Weights.TwinProximity),
			"resonance":        prime.VFloat(cfg.Weights.Resonance),
			"local_gap":        prime.VFloat(cfg.Weights.LocalGap),
		},
	}
	canonical, err := prime.MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("profile hash: failed to marshal: %w", err)
	}
	return prime.HashWithDomain(prime.DomainProfile, canonical), nil
}
