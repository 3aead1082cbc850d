package seed

import (
	"fmt"

	"github.com/chaoslab/primeseed/internal/prime"
)

// BuildBatch derives numAgents seeds from pairs by cyclic assignment:
// agent i uses pairs[i mod len(pairs)] with isUpper = (i mod 2 == 1).
//
// No state is retained between calls; given the same pair sequence and
// configuration the output sequence is identical. Fails with
// EMPTY_PAIR_SET if pairs is empty and INVALID_AGENT_COUNT if
// numAgents <= 0; configuration errors surface from NewGenerator.
func BuildBatch(pairs []prime.Pair, numAgents int, cfg Config) ([]Seed, error) {
	if len(pairs) == 0 {
		return nil, NewEmptyPairSetError()
	}
	if numAgents <= 0 {
		return nil, &GenerationError{
			Code:    ErrCodeInvalidAgentCount,
			Message: fmt.Sprintf("agent count %d must be positive", numAgents),
		}
	}

	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	seeds := make([]Seed, 0, numAgents)
	for i := 0; i < numAgents; i++ {
		pair := pairs[i%len(pairs)]
		isUpper := i%2 == 1
		s, err := gen.Generate(pair, i, isUpper)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", i, err)
		}
		seeds = append(seeds, s)
	}
	return seeds, nil
}

// BatchID computes the content-addressed identity of a seed batch from its
// parameters and the IDs of every member seed.
func BatchID(maxBound int64, numAgents int, cfg Config, seeds []Seed) (string, error) {
	ids := make(prime.VArray, len(seeds))
	for i, s := range seeds {
		id, err := s.ID()
		if err != nil {
			return "", fmt.Errorf("BatchID: seed %d: %w", i, err)
		}
		ids[i] = prime.VString(id)
	}

	obj := prime.VObject{
		"max_bound":     prime.VInt(maxBound),
		"num_agents":    prime.VInt(int64(numAgents)),
		"amplification": prime.VFloat(cfg.Amplification),
		"seed_override": prime.VInt(int64(cfg.SeedOverride)),
		"seed_ids":      ids,
	}
	canonical, err := prime.MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("BatchID: failed to marshal: %w", err)
	}
	return prime.HashWithDomain(prime.DomainBatch, canonical), nil
}
