package prime

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainPair    = "primeseed/pair/v1"
	DomainSeed    = "primeseed/seed/v1"
	DomainBatch   = "primeseed/batch/v1"
	DomainProfile = "primeseed/profile/v1"
)

// HashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte prevents domain/data boundary ambiguity.
func HashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// PairID computes the content-addressed ID for a twin-prime pair.
// Stable across runs and language implementations given the same pair.
func PairID(p Pair) (string, error) {
	obj := VObject{
		"lower": VInt(p.Lower),
		"upper": VInt(p.Upper),
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("PairID: failed to marshal: %w", err)
	}
	return HashWithDomain(DomainPair, canonical), nil
}

// MustPairID is like PairID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustPairID(p Pair) string {
	id, err := PairID(p)
	if err != nil {
		panic(err)
	}
	return id
}
