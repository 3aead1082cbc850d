// Package prime provides twin-prime discovery and canonical value types
// for the primeseed pipeline.
//
// This package is the foundational layer. All other internal packages
// import prime; prime imports nothing internal. This keeps the twin-prime
// value types free of circular dependencies.
//
// Key design constraints:
//   - Pair is an immutable value type; construct via NewPair or FindTwinPrimes
//   - Enumeration order is strictly ascending by Lower, with no duplicates
//   - Bound semantics are inclusive on the upper member: FindTwinPrimes(n)
//     returns every pair with Upper <= n
//   - Canonical serialization encodes float64 as IEEE-754 bit patterns so
//     content-addressed IDs are bit-exact
package prime
