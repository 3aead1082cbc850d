package prime

// Pair is an immutable twin-prime pair: two primes differing by exactly 2.
//
// Construct via NewPair (validating) or FindTwinPrimes (pre-validated).
// Pair is a small value type and is passed by value everywhere; it carries
// no derived state, so derived quantities are methods, not fields.
type Pair struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper"`
}

// NewPair constructs a validated twin-prime pair.
// Returns InvalidPairError if upper-lower != 2 or either member is composite.
func NewPair(lower, upper int64) (Pair, error) {
	p := Pair{Lower: lower, Upper: upper}
	if err := p.Validate(); err != nil {
		return Pair{}, err
	}
	return p, nil
}

// MustPair is like NewPair but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustPair(lower, upper int64) Pair {
	p, err := NewPair(lower, upper)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks the twin-prime invariants: gap of exactly 2, both members
// prime. The gap is checked first so a bad gap is reported even when the
// members happen to be prime (e.g. (3, 7)).
func (p Pair) Validate() error {
	if p.Upper-p.Lower != 2 {
		return &InvalidPairError{Lower: p.Lower, Upper: p.Upper, Reason: "gap is not 2"}
	}
	if !IsPrime(p.Lower) {
		return &InvalidPairError{Lower: p.Lower, Upper: p.Upper, Reason: "lower member is not prime"}
	}
	if !IsPrime(p.Upper) {
		return &InvalidPairError{Lower: p.Lower, Upper: p.Upper, Reason: "upper member is not prime"}
	}
	return nil
}

// Ratio returns Upper/Lower as a float64. Approaches 1 as the pair grows.
func (p Pair) Ratio() float64 {
	return float64(p.Upper) / float64(p.Lower)
}

// HarmonicMean returns 2/(1/Lower + 1/Upper).
func (p Pair) HarmonicMean() float64 {
	return 2.0 / (1.0/float64(p.Lower) + 1.0/float64(p.Upper))
}

// Anchor returns the member the derivation is anchored on: Upper when
// isUpper is true, Lower otherwise.
func (p Pair) Anchor(isUpper bool) int64 {
	if isUpper {
		return p.Upper
	}
	return p.Lower
}

// IsPrime reports whether n is prime by trial division.
//
// This is intentionally independent of the sieve so tests can cross-check
// sieve output against a second primality implementation. O(sqrt n) per call;
// use FindTwinPrimes for bulk enumeration.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// 6k+-1 wheel
	for d := int64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}
