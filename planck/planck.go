// Package planck converts SI quantities to and from Planck units.
package planck

import (
	"fmt"
	"strings"

	"sciencecalc/lookup"
)

// CODATA 2018 values.
const (
	Length      = 1.616255e-35 // m
	Time        = 5.391247e-44 // s
	Mass        = 2.176434e-8  // kg
	Temperature = 1.416784e32  // K
)

// Unit is one Planck base unit.
type Unit struct {
	Name   string  `json:"name"`
	Plural string  `json:"-"`
	Value  float64 `json:"si_value"`
	SI     string  `json:"si_unit"`
}

// Units holds the Planck base units by name.
var Units = lookup.New("planck unit",
	lookup.Entry[Unit]{Key: "length", Value: Unit{"length", "lengths", Length, "meters"}},
	lookup.Entry[Unit]{Key: "time", Value: Unit{"time", "times", Time, "seconds"}},
	lookup.Entry[Unit]{Key: "mass", Value: Unit{"mass", "masses", Mass, "kilograms"}},
	lookup.Entry[Unit]{Key: "temperature", Value: Unit{"temperature", "temperatures", Temperature, "Kelvin"}},
)

func MetersToPlanckLength(m float64) float64 { return m / Length }

func SecondsToPlanckTime(s float64) float64 { return s / Time }

func KilogramsToPlanckMass(kg float64) float64 { return kg / Mass }

func KelvinToPlanckTemperature(k float64) float64 { return k / Temperature }

// ToPlanck converts an SI value of the named quantity into Planck units.
func ToPlanck(quantity string, si float64) (float64, error) {
	u, err := Units.Resolve(strings.ToLower(quantity))
	if err != nil {
		return 0, err
	}
	return si / u.Value, nil
}

// FromPlanck converts a value in Planck units back to SI.
func FromPlanck(quantity string, planck float64) (float64, error) {
	u, err := Units.Resolve(strings.ToLower(quantity))
	if err != nil {
		return 0, err
	}
	return planck * u.Value, nil
}

// Quantity is an SI value of a named quantity.
type Quantity struct {
	Name  string  `json:"quantity"`
	Value float64 `json:"si_value"`
}

// Conversion is a Quantity expressed in Planck units.
type Conversion struct {
	Quantity
	Planck float64 `json:"planck_value"`
	Unit   Unit    `json:"unit"`
}

// Convert expresses each quantity in Planck units, failing on the first
// unknown name.
func Convert(qs []Quantity) ([]Conversion, error) {
	out := make([]Conversion, 0, len(qs))
	for _, q := range qs {
		u, err := Units.Resolve(strings.ToLower(q.Name))
		if err != nil {
			return nil, err
		}
		out = append(out, Conversion{Quantity: q, Planck: q.Value / u.Value, Unit: u})
	}
	return out, nil
}

// Report prints one line per conversion.
func Report(cs []Conversion) string {
	var b strings.Builder
	for _, c := range cs {
		fmt.Fprintf(&b, "%v %s is %v Planck %s\n", c.Value, c.Unit.SI, c.Planck, c.Unit.Plural)
	}
	return b.String()
}
