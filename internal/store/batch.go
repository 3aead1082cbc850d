package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chaoslab/primeseed/internal/seed"
)

// BatchRecord is a stored seed batch: the parameters that produced it plus
// every derived seed. ID is the storage identity (uuid); BatchHash is the
// content-addressed identity.
type BatchRecord struct {
	ID          string      `json:"id"`
	BatchHash   string      `json:"batch_hash"`
	ProfileHash string      `json:"profile_hash,omitempty"`
	MaxBound    int64       `json:"max_bound"`
	NumAgents   int         `json:"num_agents"`
	Config      seed.Config `json:"config"`
	CreatedSeq  int64       `json:"created_seq"`
	Seeds       []seed.Seed `json:"seeds"`
}

// BatchSummary is a listing row for a stored batch.
type BatchSummary struct {
	ID         string `json:"id"`
	BatchHash  string `json:"batch_hash"`
	MaxBound   int64  `json:"max_bound"`
	NumAgents  int    `json:"num_agents"`
	CreatedSeq int64  `json:"created_seq"`
}

// NotFoundError indicates a batch ID with no stored record.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("batch %s not found", e.ID)
}

// IsNotFound returns true if the error is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// NewBatchRecord assembles a record from pipeline output, computing the
// content hash and minting a fresh storage ID. profileHash may be empty when
// the batch was parameterized directly rather than through a profile.
func NewBatchRecord(maxBound int64, numAgents int, cfg seed.Config, profileHash string, seeds []seed.Seed) (BatchRecord, error) {
	hash, err := seed.BatchID(maxBound, numAgents, cfg, seeds)
	if err != nil {
		return BatchRecord{}, fmt.Errorf("new batch record: %w", err)
	}

	return BatchRecord{
		ID:          uuid.NewString(),
		BatchHash:   hash,
		ProfileHash: profileHash,
		MaxBound:    maxBound,
		NumAgents:   numAgents,
		Config:      cfg,
		Seeds:       seeds,
	}, nil
}
