// Package infotheory provides Shannon entropy of discrete probability
// vectors in an arbitrary logarithm base.
//
// Entropy is computed with the natural logarithm and converted to the
// requested base with the change-of-base identity log_b(v) = ln(v) / ln(b).
// Zero entries contribute nothing (0 * log 0 = 0). Vectors are not required
// to sum to one; callers are responsible for normalization.
//
// All functions are pure and safe for concurrent use.
package infotheory

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Common logarithm bases.
const (
	// BaseBits yields entropy in bits. It is the default base.
	BaseBits = 2.0

	// BaseNats yields entropy in nats.
	BaseNats = math.E

	// BaseBans yields entropy in bans (hartleys).
	BaseBans = 10.0
)

var (
	// ErrNegativeProbability is returned when a probability vector contains a
	// negative or NaN entry.
	ErrNegativeProbability = errors.New("infotheory: probabilities must be non-negative")

	// ErrInvalidBase is returned when a logarithm base is not a finite
	// positive number other than 1.
	ErrInvalidBase = errors.New("infotheory: log base must be finite, positive and not 1")
)

// LogBase returns ln(base), the divisor that converts natural-log quantities
// into the given base.
func LogBase(base float64) (float64, error) {
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 0 || base == 1 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidBase, base)
	}

	return math.Log(base), nil
}

// Validate checks every entry of p and reports the first one that is
// negative or NaN. It does not check that p sums to one.
func Validate(p []float64) error {
	for i, v := range p {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("%w: p[%d] = %g", ErrNegativeProbability, i, v)
		}
	}

	return nil
}

// Entropy returns the Shannon entropy -Σ p_i log_base(p_i) of p, summed over
// the positive entries. The whole vector is validated before anything is
// computed. An empty or all-zero vector has entropy 0.
func Entropy(p []float64, base float64) (float64, error) {
	err := Validate(p)
	if err != nil {
		return 0, err
	}

	lnBase, err := LogBase(base)
	if err != nil {
		return 0, err
	}

	return stat.Entropy(p) / lnBase, nil
}

// EntropyBits returns the Shannon entropy of p in bits.
func EntropyBits(p []float64) (float64, error) {
	return Entropy(p, BaseBits)
}
