package isotope

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"sciencecalc/decay"
	"sciencecalc/lookup"
)

// Isotope is a variant of a chemical element.
type Isotope struct {
	// Usually described as "X" in chemistry.
	Symbol string `json:"symbol"`

	// Atomic number is only number of protons. Described as "Z"
	Number int `json:"atomic_number"`

	// Mass is number of protons + neutrons. Described as "A".
	Mass int `json:"mass_number"`

	// State marks a nuclear isomer, "m" for metastable.
	State string `json:"state,omitempty"`

	// HalfLife in hours.
	HalfLife float64 `json:"half_life_hours"`

	// Use is the isotope's clinical application.
	Use string `json:"use"`
}

// Name is symbol of an isotope + it's atomic mass number, e.g. "Tc-99m".
func (iso Isotope) Name() string {
	return fmt.Sprintf("%s-%d%s", iso.Symbol, iso.Mass, iso.State)
}

// HalfValue is the half-life in hours.
func (iso Isotope) HalfValue() float64 {
	return iso.HalfLife
}

// Medical returns the table of medical isotopes parsed from isotopes.json,
// keyed by Name. Parsing occurs only once.
func Medical() (*lookup.Table[Isotope], error) {
	once.Do(func() {
		instance, loadErr = parse()
	})
	return instance, loadErr
}

func parse() (*lookup.Table[Isotope], error) {
	data, err := file.ReadFile("isotopes.json")
	if err != nil {
		return nil, err
	}
	var isos []Isotope
	if err := json.Unmarshal(data, &isos); err != nil {
		return nil, fmt.Errorf("isotopes.json: %w", err)
	}

	entries := make([]lookup.Entry[Isotope], 0, len(isos))
	seen := make(map[string]bool, len(isos))
	for _, iso := range isos {
		name := iso.Name()
		if seen[name] {
			return nil, fmt.Errorf("isotopes.json: duplicate isotope %s", name)
		}
		if _, err := decay.RateFromHalfValue(iso.HalfLife); err != nil {
			return nil, fmt.Errorf("isotopes.json: %s: %w", name, err)
		}
		seen[name] = true
		entries = append(entries, lookup.Entry[Isotope]{Key: name, Value: iso})
	}
	return lookup.New("isotope", entries...), nil
}

// Resolve looks an isotope up by name.
func Resolve(name string) (Isotope, error) {
	table, err := Medical()
	if err != nil {
		return Isotope{}, err
	}
	return table.Resolve(name)
}

// Params builds decay parameters for initial units of the named isotope.
func Params(name string, initial float64) (decay.Params, Isotope, error) {
	table, err := Medical()
	if err != nil {
		return decay.Params{}, Isotope{}, err
	}
	return decay.ParamsFor(table, name, initial)
}

// Decay calculates the amount remaining after hours of decay.
func Decay(name string, initial, hours float64) (decay.Result, error) {
	p, _, err := Params(name, initial)
	if err != nil {
		return decay.Result{}, err
	}
	return p.At(hours)
}

// ActivityTime is the number of hours needed for the named isotope to fall
// to fraction of its initial activity.
func ActivityTime(name string, fraction float64) (float64, error) {
	p, _, err := Params(name, 1)
	if err != nil {
		return 0, err
	}
	return p.SolveFraction(fraction)
}

// Curve is a sampled decay curve for one isotope.
type Curve struct {
	Isotope Isotope       `json:"isotope"`
	Initial float64       `json:"initial_amount"`
	Points  []decay.Point `json:"points"`
}

// DecayCurve samples n points of the named isotope's decay over
// [0, duration] hours.
func DecayCurve(name string, initial, duration float64, n int) (Curve, error) {
	p, iso, err := Params(name, initial)
	if err != nil {
		return Curve{}, err
	}
	points, err := decay.Sweep(p, duration, n)
	if err != nil {
		return Curve{}, err
	}
	return Curve{Isotope: iso, Initial: initial, Points: points}, nil
}

// Compare samples the decay curve of every medical isotope, in table order.
func Compare(initial, duration float64, n int) ([]Curve, error) {
	table, err := Medical()
	if err != nil {
		return nil, err
	}
	var curves []Curve
	for _, name := range table.Keys() {
		c, err := DecayCurve(name, initial, duration, n)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

//go:embed isotopes.json
var file embed.FS

var (
	instance *lookup.Table[Isotope] // singleton
	loadErr  error
	once     sync.Once
)
