// Package harness provides conformance testing for the primeseed pipeline.
//
// The harness runs declarative scenarios through the real pipeline
// (twin-prime discovery, then batch derivation) and validates the result
// against assertions and golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	max: 100
//	agents: 8
//	amplification: 0.001
//	seed_override: 0
//	assertions:
//	  - type: pair_count
//	    count: 8
//	  - type: pairs_include
//	    pairs: [[3, 5], [71, 73]]
//	  - type: position_bounds
//	  - type: alternating_anchor
//	  - type: deterministic_rerun
//
// agents: 0 declares a discovery-only scenario: twin primes are enumerated
// but no seeds are derived, and seed assertions are invalid.
//
// # Assertion Types
//
//   - pair_count: the discovery found exactly `count` pairs
//   - pairs_include: every listed (lower, upper) pair appears in the result
//   - seed_count: the batch holds exactly `count` seeds
//   - position_bounds: every position is within [0, pi] and within the
//     logistic band around 2.0944
//   - alternating_anchor: agent i is anchored on the upper member iff i is odd
//   - deterministic_rerun: re-running the whole pipeline reproduces every
//     seed bit-for-bit
//
// # Golden Snapshots
//
// RunWithGolden serializes a canonical snapshot of the result and compares
// it against testdata/golden/{name}.golden via goldie. Snapshot floats use
// fixed-precision decimal strings (position %.6f, velocity %.9f) rather than
// bit patterns: golden files must stay stable across math-library
// last-ulp differences, while bit-level determinism is covered separately by
// the deterministic_rerun assertion.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
