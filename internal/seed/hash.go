package seed

// splitmix64 mixing constants (Steele, Lea & Flood, "Fast Splittable
// Pseudorandom Number Generators", OOPSLA 2014; the same finalizer used by
// java.util.SplittableRandom). Written out in full because the constants
// ARE the portability contract: any implementation, in any language, that
// applies this exact mix reproduces the same velocities.
const (
	splitmixGamma = 0x9E3779B97F4A7C15
	splitmixMul1  = 0xBF58476D1CE4E5B9
	splitmixMul2  = 0x94D049BB133111EB
)

// splitmix64 applies one round of the splitmix64 output mix to x.
// All arithmetic is modulo 2^64.
func splitmix64(x uint64) uint64 {
	z := x + splitmixGamma
	z = (z ^ (z >> 30)) * splitmixMul1
	z = (z ^ (z >> 27)) * splitmixMul2
	return z ^ (z >> 31)
}

// mixPairIndex hashes (lower, upper, index) under a seed override into a
// single 64-bit state using three chained splitmix64 rounds:
//
//	h = splitmix64(override XOR lower)
//	h = splitmix64(h XOR upper)
//	h = splitmix64(h XOR index)
//
// Integers are reinterpreted as uint64 two's-complement; all inputs here
// are non-negative so the reinterpretation is the identity.
func mixPairIndex(lower, upper int64, index int, override uint64) uint64 {
	h := splitmix64(override ^ uint64(lower))
	h = splitmix64(h ^ uint64(upper))
	h = splitmix64(h ^ uint64(index))
	return h
}

// unitFromHash maps a 64-bit hash to [0, 1) by taking the top 53 bits
// (the full float64 mantissa width) and dividing by 2^53. Every result is
// exactly representable, so the mapping is portable bit-for-bit.
func unitFromHash(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}
