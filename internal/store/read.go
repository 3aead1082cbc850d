package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/chaoslab/primeseed/internal/seed"
)

// ReadBatch returns the full stored batch for a storage ID.
// Seeds come back ordered by agent_index, so the slice order matches the
// generation order. Returns NotFoundError if no batch has that ID.
func (s *Store) ReadBatch(ctx context.Context, id string) (BatchRecord, error) {
	var (
		rec         BatchRecord
		ampBits     int64
		wFactor     int64
		wTwin       int64
		wResonance  int64
		wGap        int64
		seedOverride int64
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, batch_hash, profile_hash, max_bound, num_agents,
		       amplification_bits, seed_override,
		       w_factor_bits, w_twin_bits, w_resonance_bits, w_gap_bits,
		       created_seq
		FROM batches
		WHERE id = ?
	`, id).Scan(
		&rec.ID, &rec.BatchHash, &rec.ProfileHash, &rec.MaxBound, &rec.NumAgents,
		&ampBits, &seedOverride,
		&wFactor, &wTwin, &wResonance, &wGap,
		&rec.CreatedSeq,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return BatchRecord{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return BatchRecord{}, fmt.Errorf("read batch: %w", err)
	}

	rec.Config = seed.Config{
		Amplification: math.Float64frombits(uint64(ampBits)),
		SeedOverride:  uint64(seedOverride),
		Weights: seed.Weights{
			FactorStructure: math.Float64frombits(uint64(wFactor)),
			TwinProximity:   math.Float64frombits(uint64(wTwin)),
			Resonance:       math.Float64frombits(uint64(wResonance)),
			LocalGap:        math.Float64frombits(uint64(wGap)),
		},
	}

	seeds, err := s.readSeeds(ctx, id)
	if err != nil {
		return BatchRecord{}, err
	}
	rec.Seeds = seeds

	return rec, nil
}

// readSeeds returns a batch's seeds in agent-index order.
func (s *Store) readSeeds(ctx context.Context, batchID string) ([]seed.Seed, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT agent_index, pair_lower, pair_upper, is_upper,
		       position_bits, velocity_bits
		FROM seeds
		WHERE batch_id = ?
		ORDER BY agent_index ASC
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("query seeds: %w", err)
	}
	defer rows.Close()

	var seeds []seed.Seed
	for rows.Next() {
		var (
			sd      seed.Seed
			posBits int64
			velBits int64
		)
		if err := rows.Scan(
			&sd.Index, &sd.Pair.Lower, &sd.Pair.Upper, &sd.IsUpper,
			&posBits, &velBits,
		); err != nil {
			return nil, fmt.Errorf("scan seed: %w", err)
		}
		sd.Position = math.Float64frombits(uint64(posBits))
		sd.Velocity = math.Float64frombits(uint64(velBits))
		seeds = append(seeds, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seeds: %w", err)
	}

	if seeds == nil {
		seeds = []seed.Seed{}
	}
	return seeds, nil
}

// ListBatches returns summaries of all stored batches ordered
// deterministically by (created_seq, id).
func (s *Store) ListBatches(ctx context.Context) ([]BatchSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, batch_hash, max_bound, num_agents, created_seq
		FROM batches
		ORDER BY created_seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []BatchSummary
	for rows.Next() {
		var b BatchSummary
		if err := rows.Scan(&b.ID, &b.BatchHash, &b.MaxBound, &b.NumAgents, &b.CreatedSeq); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}

	if out == nil {
		out = []BatchSummary{}
	}
	return out, nil
}
