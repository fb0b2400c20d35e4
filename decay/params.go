package decay

import (
	"math"

	"sciencecalc/lookup"
)

// Params is an initial amount paired with its rate constant.
// The zero value is not usable; build one with NewParams or FromHalfValue.
type Params struct {
	initial float64
	rate    float64
}

// Result is the outcome of a single evaluation.
type Result struct {
	Remaining float64 `json:"remaining"`
	Fraction  float64 `json:"fraction_of_initial"`
}

// NewParams validates and pairs an initial amount with a rate constant.
func NewParams(initial, rate float64) (Params, error) {
	if !positive(initial) {
		return Params{}, invalid("initial amount must be positive, got %v", initial)
	}
	if !positive(rate) {
		return Params{}, invalid("rate constant must be positive, got %v", rate)
	}
	return Params{initial: initial, rate: rate}, nil
}

// FromHalfValue derives the rate constant from a half-value length.
// Only the rate is kept.
func FromHalfValue(initial, halfValue float64) (Params, error) {
	rate, err := RateFromHalfValue(halfValue)
	if err != nil {
		return Params{}, err
	}
	return NewParams(initial, rate)
}

func (p Params) Initial() float64 { return p.initial }

func (p Params) Rate() float64 { return p.rate }

// HalfValue recomputes ln(2) / rate.
func (p Params) HalfValue() float64 {
	return math.Ln2 / p.rate
}

// At evaluates the law at x.
func (p Params) At(x float64) (Result, error) {
	remaining, err := Evaluate(p.initial, p.rate, x)
	if err != nil {
		return Result{}, err
	}
	return Result{Remaining: remaining, Fraction: fraction(p.rate, x)}, nil
}

// Solve returns the x at which the amount has fallen to target.
func (p Params) Solve(target float64) (float64, error) {
	return Invert(p.initial, p.rate, target)
}

// SolveFraction returns the x at which the amount has fallen to f of the
// initial amount, with f in (0, 1].
func (p Params) SolveFraction(f float64) (float64, error) {
	if !(f > 0) || f > 1 {
		return 0, invalid("fraction must lie in (0, 1], got %v", f)
	}
	return Invert(1, p.rate, f)
}

// HalfValuer is implemented by table entries that carry a half-value
// length, directly (half-life) or derived (half-value thickness).
type HalfValuer interface {
	HalfValue() float64
}

// ParamsFor resolves key in table and builds Params for the given initial
// amount from the entry's half-value length.
func ParamsFor[V HalfValuer](table *lookup.Table[V], key string, initial float64) (Params, V, error) {
	entry, err := table.Resolve(key)
	if err != nil {
		return Params{}, entry, err
	}
	p, err := FromHalfValue(initial, entry.HalfValue())
	if err != nil {
		return Params{}, entry, err
	}
	return p, entry, nil
}
