package store

import (
	"context"
	"fmt"
	"math"
)

// WriteBatch inserts a batch and its seeds in one transaction.
//
// Idempotent on content: if a batch with the same batch_hash already exists,
// the write is silently skipped (ON CONFLICT DO NOTHING on the UNIQUE hash)
// and the existing record stays untouched, including its storage ID and
// created_seq. Returns the storage ID that now holds the content.
func (s *Store) WriteBatch(ctx context.Context, rec BatchRecord) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("write batch: begin: %w", err)
	}
	defer tx.Rollback()

	// Logical clock: next created_seq. COALESCE handles the empty table.
	var nextSeq int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(created_seq), 0) + 1 FROM batches`,
	).Scan(&nextSeq); err != nil {
		return "", fmt.Errorf("write batch: next seq: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO batches
		(id, batch_hash, profile_hash, max_bound, num_agents,
		 amplification_bits, seed_override,
		 w_factor_bits, w_twin_bits, w_resonance_bits, w_gap_bits,
		 created_seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(batch_hash) DO NOTHING
	`,
		rec.ID,
		rec.BatchHash,
		rec.ProfileHash,
		rec.MaxBound,
		rec.NumAgents,
		int64(math.Float64bits(rec.Config.Amplification)),
		int64(rec.Config.SeedOverride),
		int64(math.Float64bits(rec.Config.Weights.FactorStructure)),
		int64(math.Float64bits(rec.Config.Weights.TwinProximity)),
		int64(math.Float64bits(rec.Config.Weights.Resonance)),
		int64(math.Float64bits(rec.Config.Weights.LocalGap)),
		nextSeq,
	)
	if err != nil {
		return "", fmt.Errorf("write batch: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("write batch: rows affected: %w", err)
	}
	if inserted == 0 {
		// Content already stored; report the existing ID.
		var existing string
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM batches WHERE batch_hash = ?`, rec.BatchHash,
		).Scan(&existing); err != nil {
			return "", fmt.Errorf("write batch: lookup existing: %w", err)
		}
		return existing, tx.Commit()
	}

	for _, sd := range rec.Seeds {
		id, err := sd.ID()
		if err != nil {
			return "", fmt.Errorf("write batch: seed %d: %w", sd.Index, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO seeds
			(batch_id, agent_index, pair_lower, pair_upper, is_upper,
			 position_bits, velocity_bits, seed_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`,
			rec.ID,
			sd.Index,
			sd.Pair.Lower,
			sd.Pair.Upper,
			sd.IsUpper,
			int64(math.Float64bits(sd.Position)),
			int64(math.Float64bits(sd.Velocity)),
			id,
		); err != nil {
			return "", fmt.Errorf("write batch: seed %d: %w", sd.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("write batch: commit: %w", err)
	}
	return rec.ID, nil
}
