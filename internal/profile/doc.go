// Package profile loads and validates CUE-defined seed profiles.
//
// A profile pins every parameter of a seeding run in one declarative file,
// so a batch can be reproduced from its profile alone:
//
//	profile: {
//		name:          "baseline"
//		max:           100
//		agents:        16
//		amplification: 0.001
//		seed_override: 0
//		weights: {
//			factor_structure: 0.3
//			twin_proximity:   0.25
//			resonance:        0.25
//			local_gap:        0.2
//		}
//	}
//
// seed_override and weights are optional; omitted weights mean the canonical
// 0.3/0.25/0.25/0.2 set. Profiles are content-addressed (Hash), and the store
// records the profile hash alongside each batch so verification can detect a
// profile drift as well as a data drift.
package profile
