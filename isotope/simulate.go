package isotope

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mroth/weightedrand"

	"sciencecalc/decay"
)

// resolution is the total chooser weight per draw; decay probabilities are
// quantised to 1/resolution.
const resolution = 1_000_000

// Simulation is the outcome of a Monte Carlo decay run.
type Simulation struct {
	Isotope   Isotope   `json:"isotope"`
	Atoms     int       `json:"atoms"`
	Times     []float64 `json:"times_hours"`
	Survivors []int     `json:"survivors"`
	Expected  []float64 `json:"expected"`
}

// Simulate decays atoms of the named isotope over duration hours in steps
// equal intervals. At every step each surviving atom decays with
// probability 1 - exp(-k*dt). Expected holds the analytic amount at the
// same times. The same seed always gives the same run.
func Simulate(name string, atoms int, duration float64, steps int, seed int64) (Simulation, error) {
	if atoms <= 0 {
		return Simulation{}, fmt.Errorf("%w: atom count must be positive, got %d", decay.ErrInvalidParameter, atoms)
	}
	if steps <= 0 {
		return Simulation{}, fmt.Errorf("%w: step count must be positive, got %d", decay.ErrInvalidParameter, steps)
	}
	if !(duration > 0) {
		return Simulation{}, fmt.Errorf("%w: duration must be positive, got %v", decay.ErrInvalidParameter, duration)
	}

	p, iso, err := Params(name, float64(atoms))
	if err != nil {
		return Simulation{}, err
	}

	dt := duration / float64(steps)
	chooser, err := decayChooser(1 - math.Exp(-p.Rate()*dt))
	if err != nil {
		return Simulation{}, err
	}
	rng := rand.New(rand.NewSource(seed))

	sim := Simulation{
		Isotope:   iso,
		Atoms:     atoms,
		Times:     decay.Linspace(0, duration, steps+1),
		Survivors: make([]int, 0, steps+1),
		Expected:  make([]float64, 0, steps+1),
	}
	alive := atoms
	for i, t := range sim.Times {
		if i > 0 {
			decayed := 0
			for n := 0; n < alive; n++ {
				if chooser.PickSource(rng).(bool) {
					decayed++
				}
			}
			alive -= decayed
		}
		r, err := p.At(t)
		if err != nil {
			return Simulation{}, err
		}
		sim.Survivors = append(sim.Survivors, alive)
		sim.Expected = append(sim.Expected, r.Remaining)
	}
	return sim, nil
}

// decayChooser picks true (decayed) with probability prob.
func decayChooser(prob float64) (*weightedrand.Chooser, error) {
	decayed := uint(math.Round(prob * resolution))
	if decayed > resolution {
		decayed = resolution
	}
	return weightedrand.NewChooser(
		weightedrand.NewChoice(true, decayed),
		weightedrand.NewChoice(false, resolution-decayed),
	)
}
