// Package worldline plots a toy pair of radial worldlines in a
// Malament-Hogarth spacetime: an observer falling in exponentially and a
// computer approaching the singularity linearly.
package worldline

import (
	"fmt"
	"math"

	"sciencecalc/decay"
)

const (
	ObserverStart = 10.0  // initial radius of the observer
	ObserverScale = 10.0  // proper time constant of the observer's fall
	ComputerStart = 8.0   // initial radius of the computer
	Accumulation  = 100.0 // proper time at which the computer reaches r = 0
)

// observer is r = 10 * exp(-t/10): the decay law with rate 1/10.
var observer = func() decay.Params {
	p, err := decay.NewParams(ObserverStart, 1/ObserverScale)
	if err != nil {
		panic(err)
	}
	return p
}()

// Observer returns the observer's radial coordinate at proper time t.
func Observer(t float64) (float64, error) {
	r, err := observer.At(t)
	if err != nil {
		return 0, err
	}
	return r.Remaining, nil
}

// Computer returns the computer's radial coordinate at proper time t.
// It reaches the singularity at t = Accumulation and goes negative past it.
func Computer(t float64) float64 {
	return ComputerStart * (1 - t/Accumulation)
}

// Result holds both worldlines sampled at the same proper times.
type Result struct {
	Times    []float64 `json:"times"`
	Observer []float64 `json:"observer"`
	Computer []float64 `json:"computer"`

	// TimeRatio is final over initial proper time, +Inf when the first
	// sample is at t = 0.
	TimeRatio     float64 `json:"-"`
	MaxSeparation float64 `json:"max_separation"`
	// RemainingTime is 10 ln r_observer at the last sample.
	RemainingTime float64 `json:"remaining_time"`
}

// Compute samples both worldlines at times, which must be non-negative and
// non-empty. The last time must leave the observer at a representable
// radius (roughly t < 7470).
func Compute(times []float64) (Result, error) {
	if len(times) == 0 {
		return Result{}, fmt.Errorf("%w: no proper times given", decay.ErrInvalidParameter)
	}
	res := Result{
		Times:    times,
		Observer: make([]float64, len(times)),
		Computer: make([]float64, len(times)),
	}
	for i, t := range times {
		r, err := Observer(t)
		if err != nil {
			return Result{}, err
		}
		res.Observer[i] = r
		res.Computer[i] = Computer(t)
		res.MaxSeparation = math.Max(res.MaxSeparation, math.Abs(r-res.Computer[i]))
	}

	first, last := times[0], times[len(times)-1]
	if first == 0 {
		res.TimeRatio = math.Inf(1)
	} else {
		res.TimeRatio = last / first
	}
	final := res.Observer[len(times)-1]
	if final == 0 {
		return Result{}, fmt.Errorf("%w: observer radius underflows to 0 by proper time %v", decay.ErrInvalidParameter, last)
	}
	res.RemainingTime = ObserverScale * math.Log(final)
	return res, nil
}

// Sample computes the worldlines over n proper times in [0, end].
func Sample(end float64, n int) (Result, error) {
	if n < 1 {
		return Result{}, fmt.Errorf("%w: need at least one sample, got %d", decay.ErrInvalidParameter, n)
	}
	return Compute(decay.Linspace(0, end, n))
}
