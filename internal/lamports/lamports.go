// Package lamports converts between SOL and lamports using
// shopspring/decimal, the same library the teacher uses throughout
// pkg/mmodel for exact money math, so the round(x × 10^9) in spec.md §4.1
// and §4.6 never drifts through binary floating point.
package lamports

import "github.com/shopspring/decimal"

// PerSol is the number of lamports in one SOL.
const PerSol = 1_000_000_000

// FromSol converts a SOL amount to lamports via round(x × 10^9), per
// spec.md §4.1 ("optional total_sol → lamports via round(x × 10^9)").
func FromSol(sol float64) int64 {
	d := decimal.NewFromFloat(sol).Mul(decimal.NewFromInt(PerSol))
	return d.Round(0).IntPart()
}

// FromSolString is the same conversion from a decimal string, avoiding the
// float64 round-trip entirely when the input is already textual (e.g. read
// from JSON as a string to preserve precision).
func FromSolString(sol string) (int64, error) {
	d, err := decimal.NewFromString(sol)
	if err != nil {
		return 0, err
	}
	return d.Mul(decimal.NewFromInt(PerSol)).Round(0).IntPart(), nil
}

// ToSol converts lamports back to a SOL decimal for display purposes.
func ToSol(lamports int64) decimal.Decimal {
	return decimal.NewFromInt(lamports).Div(decimal.NewFromInt(PerSol))
}
