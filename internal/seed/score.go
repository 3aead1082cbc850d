package seed

import (
	"math"

	"github.com/chaoslab/primeseed/internal/prime"
)

// Sub-score formulas for the raw position scalar. Each returns a value in
// [0,1]. These are fixed, documented transforms of the seeding scheme;
// they are deliberately opaque and carry no deeper number-theoretic claim.

// factorStructureScore measures the factor structure around the anchor.
// A prime itself has trivial structure, so the score counts distinct prime
// factors of its even neighbors: omega(a-1) + omega(a+1), capped at 8,
// normalized to [0,1].
func factorStructureScore(anchor int64) float64 {
	count := distinctPrimeFactors(anchor-1) + distinctPrimeFactors(anchor+1)
	if count > 8 {
		count = 8
	}
	return float64(count) / 8.0
}

// twinProximityScore measures the fixed twin gap of 2 relative to the pair
// magnitude: 1 - 2/lower. Grows toward 1 for large pairs.
func twinProximityScore(lower int64) float64 {
	return 1.0 - 2.0/float64(lower)
}

// resonanceScore measures how close anchor/c sits to the midpoint between
// integers, averaged over c in {phi, pi, e}:
//
//	term(c) = 1 - |2*frac(anchor/c) - 1|
//
// term is 1 when the fractional part is exactly 0.5 and 0 at an integer
// multiple.
func resonanceScore(anchor int64) float64 {
	a := float64(anchor)
	sum := 0.0
	for _, c := range [3]float64{GoldenRatio, math.Pi, math.E} {
		_, frac := math.Modf(a / c)
		sum += 1.0 - math.Abs(2.0*frac-1.0)
	}
	return sum / 3.0
}

// localGapScore compares the twin gap of 2 against the expected prime gap
// ln(anchor) near the anchor: min(1, 2/ln(anchor)).
func localGapScore(anchor int64) float64 {
	g := 2.0 / math.Log(float64(anchor))
	if g > 1 {
		return 1
	}
	return g
}

// rawScore combines the four sub-scores with the configured weights, in
// fixed order. The result is in [0,1] for valid weights.
func rawScore(pair prime.Pair, anchor int64, w Weights) float64 {
	return w.FactorStructure*factorStructureScore(anchor) +
		w.TwinProximity*twinProximityScore(pair.Lower) +
		w.Resonance*resonanceScore(anchor) +
		w.LocalGap*localGapScore(anchor)
}

// logistic is the normalization step: L = 1 / (1 + exp(-2r)).
func logistic(r float64) float64 {
	return 1.0 / (1.0 + math.Exp(-2.0*r))
}

// distinctPrimeFactors returns omega(n), the number of distinct prime
// factors of n, by trial division. n here is anchor+-1 for anchors that fit
// a sieve bound, so the O(sqrt n) cost is negligible.
func distinctPrimeFactors(n int64) int {
	if n < 2 {
		return 0
	}
	count := 0
	if n%2 == 0 {
		count++
		for n%2 == 0 {
			n /= 2
		}
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			count++
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		count++
	}
	return count
}
