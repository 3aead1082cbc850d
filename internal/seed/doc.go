// Package seed derives reproducible chaos seeds from twin-prime pairs.
//
// A chaos seed is a (position, velocity) pair used to initialize an external
// chaotic-system simulation. The simulation itself is out of scope; this
// package only guarantees that the derivation is a pure function of
// (pair, agent index, anchor selection, configuration) and is bit-for-bit
// reproducible across runs.
//
// ARCHITECTURE:
//
// Pure-Function Pipeline:
// There is no state machine here. Generation is strictly
//
//	enumerate pairs -> derive seeds -> collect
//
// with no shared mutable state, no wall-clock input, and no randomness
// beyond the documented splitmix64 mix in hash.go. Per-agent derivation is
// embarrassingly parallel, but callers get no ordering guarantee beyond
// output-order preservation and should not rely on one.
//
// CRITICAL PATTERNS:
//
// Deterministic Position:
// The position derivation (weighted sub-scores -> logistic -> narrow band
// around 120 degrees) is an opaque, fixed transform inherited from the
// seeding scheme this package implements. It is reproduced exactly, not
// re-derived; see score.go for the documented sub-score formulas.
//
// Portable Velocity:
// The hash-to-unit-interval mapping is splitmix64 with its constants written
// out in hash.go, so any language implementation can reproduce the same
// velocities. NEVER substitute a language-builtin hash.
package seed
