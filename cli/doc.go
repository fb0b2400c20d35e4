// Package cli defines the sciencecalc command tree.
//
// Commands
//
//   - isotope     Medical isotope decay: decay, compare, activity, simulate, list
//   - shield      Radiation shielding: compare, attenuate
//   - nuclear     Water heating, fixed-coefficient shielding and decay sweeps
//   - population  Age-banded population survival
//   - gold        Gold reserves expressed as oil energy
//   - planck      SI values in Planck units
//   - worldline   Toy Malament-Hogarth worldlines
//
// Every flag defaults to the sample inputs the calculators were written
// around, so a bare subcommand prints the reference report. Charts and JSON
// results go to --out; --metrics-file dumps run counters in Prometheus text
// format.
package cli
