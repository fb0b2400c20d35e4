// Package isotope models the decay of common medical radioisotopes.
//
// Half-lives are read from the embedded isotopes.json and exposed as a
// lookup table keyed by isotope name ("Tc-99m", "I-131", ...). Decay,
// activity-time and curve calculations all go through package decay; the
// Monte Carlo simulation in Simulate reproduces the same law atom by atom.
package isotope
