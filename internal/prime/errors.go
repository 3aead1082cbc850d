package prime

import (
	"errors"
	"fmt"
)

// InvalidRangeError indicates a sieve bound below the minimum of 2.
//
// FindTwinPrimes requires n >= 2. Callers wanting at least one pair in the
// result should pass n >= 5, since the smallest twin-prime pair is (3, 5);
// bounds in [2, 4] are valid but yield an empty sequence.
type InvalidRangeError struct {
	// N is the rejected bound.
	N int64
}

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid sieve bound %d: must be >= 2", e.N)
}

// InvalidPairError indicates a malformed twin-prime pair supplied externally.
//
// A valid pair satisfies Upper == Lower+2 with both members prime. The Reason
// field distinguishes a bad gap from a composite member.
type InvalidPairError struct {
	Lower  int64
	Upper  int64
	Reason string
}

// Error implements the error interface.
func (e *InvalidPairError) Error() string {
	return fmt.Sprintf("invalid twin-prime pair (%d, %d): %s", e.Lower, e.Upper, e.Reason)
}

// IsInvalidRange returns true if the error is an InvalidRangeError.
// Uses errors.As to handle wrapped errors.
func IsInvalidRange(err error) bool {
	var re *InvalidRangeError
	return errors.As(err, &re)
}

// IsInvalidPair returns true if the error is an InvalidPairError.
// Uses errors.As to handle wrapped errors.
func IsInvalidPair(err error) bool {
	var pe *InvalidPairError
	return errors.As(err, &pe)
}
