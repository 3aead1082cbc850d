// Package store provides SQLite-backed durable storage for seed batches.
//
// The store records each generated batch with the full parameter set that
// produced it, so any batch can be re-derived later and checked bit-for-bit
// against what was stored (see verify.go).
//
// # Critical Patterns
//
// Bit-Exact Floats
//   - position/velocity/amplification/weights are stored as INTEGER IEEE-754
//     bit patterns, never REAL
//   - bit patterns make the exactness intent unmissable and keep -0.0 and
//     NaN payloads stable across round-trips
//
// Content-Addressed Idempotency
//   - batches.batch_hash is UNIQUE; rewriting the same batch is a no-op
//   - batch_hash covers the parameters and every member seed ID, computed
//     via canonical JSON and SHA-256 with domain separation (internal/prime)
//
// Logical Sequence
//   - created_seq is a monotonic logical counter assigned at write time,
//     never a wall-clock timestamp; listing orders by (created_seq, id)
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
