// Package shielding sizes radiation shields with the Beer-Lambert law
//
//	I = I0 * exp(-mu * rho * x)
//
// where mu is the mass attenuation coefficient and rho the density of the
// material.
package shielding

import (
	"fmt"
	"math"

	"sciencecalc/decay"
	"sciencecalc/lookup"
)

// Material stores the properties of a shielding material.
type Material struct {
	Name        string  `json:"name"`
	Density     float64 `json:"density_g_cm3"`
	Attenuation float64 `json:"attenuation_cm2_g"`
	CostPerCm3  float64 `json:"cost_per_cm3_usd"`
}

// LinearAttenuation is mu * rho in 1/cm.
func (m Material) LinearAttenuation() float64 {
	return m.Attenuation * m.Density
}

// HalfValue is the half-value thickness in cm.
func (m Material) HalfValue() float64 {
	return math.Ln2 / m.LinearAttenuation()
}

// Materials holds the common shielding materials.
var Materials = lookup.New("material",
	lookup.Entry[Material]{Key: "concrete", Value: Material{"Concrete", 2.3, 0.0573, 0.02}},
	lookup.Entry[Material]{Key: "lead", Value: Material{"Lead", 11.34, 0.0959, 0.25}},
	lookup.Entry[Material]{Key: "water", Value: Material{"Water", 1.0, 0.0706, 0.001}},
	lookup.Entry[Material]{Key: "steel", Value: Material{"Steel", 7.874, 0.0706, 0.15}},
	lookup.Entry[Material]{Key: "earth", Value: Material{"Earth", 1.6, 0.0512, 0.001}},
)

// UnitArea is the face of the shield used for cost and weight, 1 m x 1 m.
const UnitArea = 100 * 100 // cm²

// Params builds decay parameters for the named material.
func Params(material string, initial float64) (decay.Params, Material, error) {
	return decay.ParamsFor(Materials, material, initial)
}

// Attenuate returns the intensity left after thickness cm of material.
func Attenuate(initial float64, material string, thickness float64) (float64, error) {
	p, _, err := Params(material, initial)
	if err != nil {
		return 0, err
	}
	r, err := p.At(thickness)
	if err != nil {
		return 0, err
	}
	return r.Remaining, nil
}

// RequiredThickness returns the thickness in cm of material needed to bring
// initial intensity down to target.
func RequiredThickness(initial, target float64, material string) (float64, error) {
	p, _, err := Params(material, initial)
	if err != nil {
		return 0, err
	}
	return p.Solve(target)
}

// Option sizes a shield made of one material.
type Option struct {
	Material  string  `json:"material"`
	Thickness float64 `json:"thickness_cm"`
	Volume    float64 `json:"volume_cm3"`
	Cost      float64 `json:"cost_usd"`
	Weight    float64 `json:"weight_kg"`
}

// Size composes the required thickness of one material into volume, cost
// and weight for a shield of UnitArea.
func Size(initial, target float64, material string) (Option, error) {
	p, m, err := Params(material, initial)
	if err != nil {
		return Option{}, err
	}
	thickness, err := p.Solve(target)
	if err != nil {
		return Option{}, fmt.Errorf("%s: %w", material, err)
	}
	volume := thickness * UnitArea
	return Option{
		Material:  material,
		Thickness: thickness,
		Volume:    volume,
		Cost:      volume * m.CostPerCm3,
		Weight:    volume * m.Density / 1000,
	}, nil
}

// Compare sizes a shield in every material, in table order.
func Compare(initial, target float64) ([]Option, error) {
	var options []Option
	for _, name := range Materials.Keys() {
		o, err := Size(initial, target, name)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, nil
}

// Curve is intensity sampled through one material.
type Curve struct {
	Material string        `json:"material"`
	Points   []decay.Point `json:"points"`
}

// Curves samples n thicknesses in [0, maxThickness] for every material.
func Curves(initial, maxThickness float64, n int) ([]Curve, error) {
	var curves []Curve
	for _, name := range Materials.Keys() {
		p, _, err := Params(name, initial)
		if err != nil {
			return nil, err
		}
		points, err := decay.Sweep(p, maxThickness, n)
		if err != nil {
			return nil, err
		}
		curves = append(curves, Curve{Material: name, Points: points})
	}
	return curves, nil
}
