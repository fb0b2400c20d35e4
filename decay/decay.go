// Package decay evaluates the exponential decay/attenuation law
//
//	N(x) = N0 * exp(-k * x)
//
// and its inverse. The same law covers radioactive decay over time and
// radiation attenuation through a thickness of material; x is whichever of
// the two the caller works in.
package decay

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned for inputs outside the physical domain
// of the law: non-positive half-values, negative positions, targets outside
// (0, initial].
var ErrInvalidParameter = errors.New("invalid parameter")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// positive reports whether v is a finite number greater than zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// nonNegative reports whether v is a finite number greater or equal to zero.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// RateFromHalfValue converts a half-life or half-value thickness into the
// rate constant ln(2) / halfValue.
func RateFromHalfValue(halfValue float64) (float64, error) {
	if !positive(halfValue) {
		return 0, invalid("half-value length must be positive, got %v", halfValue)
	}
	return math.Ln2 / halfValue, nil
}

// Evaluate returns initial * exp(-rate * x).
func Evaluate(initial, rate, x float64) (float64, error) {
	if !nonNegative(initial) {
		return 0, invalid("initial amount must be non-negative, got %v", initial)
	}
	if !nonNegative(rate) {
		return 0, invalid("rate constant must be non-negative, got %v", rate)
	}
	if !nonNegative(x) {
		return 0, invalid("position must be non-negative, got %v", x)
	}
	return initial * math.Exp(-rate*x), nil
}

// Invert solves Evaluate(initial, rate, x) == target for x.
// The target must lie in (0, initial]: anything above initial would need a
// negative time or thickness.
func Invert(initial, rate, target float64) (float64, error) {
	if !positive(initial) {
		return 0, invalid("initial amount must be positive, got %v", initial)
	}
	if !positive(rate) {
		return 0, invalid("rate constant must be positive, got %v", rate)
	}
	if !(target > 0) {
		return 0, invalid("target amount must be positive, got %v", target)
	}
	if target > initial {
		return 0, invalid("target amount %v exceeds initial amount %v", target, initial)
	}
	return -math.Log(target/initial) / rate, nil
}

// fraction returns exp(-rate*x), kept strictly positive when the
// exponential underflows.
func fraction(rate, x float64) float64 {
	f := math.Exp(-rate * x)
	if f == 0 {
		return math.SmallestNonzeroFloat64
	}
	return f
}
