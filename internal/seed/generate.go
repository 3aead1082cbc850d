package seed

import (
	"fmt"
	"math"

	"github.com/chaoslab/primeseed/internal/prime"
)

// Seed is a reproducible (position, velocity) record derived from a
// twin-prime pair and an agent index. Immutable after creation; Pair is a
// back-reference for traceability, not ownership.
type Seed struct {
	Pair     prime.Pair `json:"pair"`
	Index    int        `json:"index"`
	IsUpper  bool       `json:"is_upper"`
	Position float64    `json:"position"`
	Velocity float64    `json:"velocity"`
}

// ID computes the content-addressed identity of the seed. Floats enter the
// hash as IEEE-754 bit patterns, so the ID is bit-exact: two seeds with the
// same ID carry identical values to full precision.
func (s Seed) ID() (string, error) {
	obj := prime.VObject{
		"pair_lower": prime.VInt(s.Pair.Lower),
		"pair_upper": prime.VInt(s.Pair.Upper),
		"index":      prime.VInt(int64(s.Index)),
		"is_upper":   prime.VBool(s.IsUpper),
		"position":   prime.VFloat(s.Position),
		"velocity":   prime.VFloat(s.Velocity),
	}
	canonical, err := prime.MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("SeedID: failed to marshal: %w", err)
	}
	return prime.HashWithDomain(prime.DomainSeed, canonical), nil
}

// MustID is like ID but panics on error.
// Use only in tests or when inputs are known to be valid.
func (s Seed) MustID() string {
	id, err := s.ID()
	if err != nil {
		panic(err)
	}
	return id
}

// Generator derives seeds under a fixed, validated configuration.
// Stateless after construction and safe for concurrent use.
type Generator struct {
	cfg Config
}

// NewGenerator validates cfg and returns a generator.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate derives the chaos seed for (pair, index, isUpper).
//
// Position: the four sub-scores (score.go) are combined with the configured
// weights into r in [0,1], normalized by the logistic L = 1/(1+exp(-2r)),
// then mapped into a band of half-width 0.005 rad around TargetCenter:
//
//	position = TargetCenter + sign * (L - 0.5) * PerturbationSpan
//
// where sign is +1 when anchored on the upper member, -1 on the lower.
// The result is clamped to [0, pi].
//
// Velocity: Amplification * u, where u in [-1, 1) comes from the splitmix64
// mix of (lower, upper, index) and the seed override (hash.go).
//
// Fails with InvalidPairError for a malformed pair and an INVALID_INDEX
// GenerationError for a negative index. For fixed inputs and configuration
// the output is bit-for-bit reproducible.
func (g *Generator) Generate(pair prime.Pair, index int, isUpper bool) (Seed, error) {
	if err := pair.Validate(); err != nil {
		return Seed{}, err
	}
	if index < 0 {
		return Seed{}, NewInvalidIndexError(index)
	}

	anchor := pair.Anchor(isUpper)
	r := rawScore(pair, anchor, g.cfg.Weights)
	l := logistic(r)

	sign := -1.0
	if isUpper {
		sign = 1.0
	}
	position := TargetCenter + sign*(l-0.5)*PerturbationSpan
	position = clamp(position, 0, math.Pi)

	h := mixPairIndex(pair.Lower, pair.Upper, index, g.cfg.SeedOverride)
	unit := 2.0*unitFromHash(h) - 1.0 // [-1, 1)
	velocity := g.cfg.Amplification * unit

	return Seed{
		Pair:     pair,
		Index:    index,
		IsUpper:  isUpper,
		Position: position,
		Velocity: velocity,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
