package prime

// bitset is a fixed-size bit array used for the sieve table.
// One bit per candidate keeps the table at n/8 bytes instead of n bytes
// for a []bool.
type bitset []uint64

func newBitset(n int64) bitset {
	return make(bitset, (n+64)/64)
}

func (b bitset) set(i int64)      { b[i>>6] |= 1 << (uint(i) & 63) }
func (b bitset) get(i int64) bool { return b[i>>6]&(1<<(uint(i)&63)) != 0 }

// Sieve computes a primality table for [0, n] via the sieve of Eratosthenes.
// The returned table answers IsPrime queries for any value <= n.
// O(n log log n) time, O(n) bits of space.
func Sieve(n int64) (Table, error) {
	if n < 2 {
		return Table{}, &InvalidRangeError{N: n}
	}

	// composite bits; 0 and 1 handled below
	composite := newBitset(n)
	composite.set(0)
	composite.set(1)
	for p := int64(2); p*p <= n; p++ {
		if composite.get(p) {
			continue
		}
		for m := p * p; m <= n; m += p {
			composite.set(m)
		}
	}

	return Table{max: n, composite: composite}, nil
}

// Table is an immutable primality table produced by Sieve.
type Table struct {
	max       int64
	composite bitset
}

// Max returns the inclusive bound the table was built for.
func (t Table) Max() int64 {
	return t.max
}

// IsPrime reports whether v is prime. Panics if v is outside [0, Max];
// the table is always queried through TwinPairs in production code, so an
// out-of-range query is a programming error, not an input error.
func (t Table) IsPrime(v int64) bool {
	if v < 0 || v > t.max {
		panic("prime: table query out of range")
	}
	return !t.composite.get(v)
}

// TwinPairs scans the table and returns every twin-prime pair with
// Upper <= Max, in strictly ascending order of Lower.
func (t Table) TwinPairs() []Pair {
	var pairs []Pair
	for p := int64(3); p+2 <= t.max; p += 2 {
		if t.IsPrime(p) && t.IsPrime(p+2) {
			pairs = append(pairs, Pair{Lower: p, Upper: p + 2})
		}
	}
	if pairs == nil {
		pairs = []Pair{}
	}
	return pairs
}

// FindTwinPrimes enumerates all twin-prime pairs with Upper <= n.
//
// Bound semantics are inclusive on the UPPER member: a pair (p, p+2) is
// included iff p+2 <= n. So FindTwinPrimes(10) yields (3,5) and (5,7), and
// FindTwinPrimes(100) yields exactly 8 pairs ending with (71,73).
//
// Returns InvalidRangeError if n < 2. Bounds in [2, 4] yield an empty
// (non-nil) slice; the smallest twin-prime pair is (3, 5). Pure function,
// no I/O, no retained state.
func FindTwinPrimes(n int64) ([]Pair, error) {
	table, err := Sieve(n)
	if err != nil {
		return nil, err
	}
	return table.TwinPairs(), nil
}
