// SPDX-License-Identifier: MIT

// Package matrix - decimal precision normalization.
//
// Purpose:
//   - Round float64 values at a decimal (not binary) boundary with half-away-from-zero
//     semantics, so that 0.1+0.2 settles on 0.3 instead of 0.30000000000000004.
//   - Provide the per-cell normalizer used by the row-reduction kernels after every
//     arithmetic write.
//
// Implementation notes:
//   - A float64 is a dyadic rational num/2^k. big.Rat.SetFloat64 recovers it exactly,
//     and decimal.DivRound performs exact long division with a half-away-from-zero
//     decision on the remainder. Scaling by 10^k in binary would reintroduce the very
//     error being removed.

package matrix

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// NormalizedPlaces is the decimal scale used by NormalizePrecision and by the
// row-reduction kernels: the practical decimal-precision ceiling of a float64.
const NormalizedPlaces = 15

const ctxRound = "Round"

// exactPlaces bounds the fractional digits of any float64: the exact
// expansion of 2^-1074 has 1074 of them. Rounding at or beyond this scale
// leaves every value unchanged.
const exactPlaces = 1100

// RoundValue rounds v to places decimal digits, half away from zero.
// MAIN DESCRIPTION:
//   - Decimal-exact rounding of the stored binary value.
//
// Behavior highlights:
//   - NaN and ±Inf are returned unchanged.
//   - -0 (and any value that rounds to zero) comes back as +0.
//
// Errors:
//   - ErrInvalidArgument when places < 0.
//
// Complexity:
//   - O(d) big-number work where d is the digit count of the exact value;
//     scales of exactPlaces and above return v without any big-number work.
func RoundValue(v float64, places int) (float64, error) {
	if err := validatePlaces(places); err != nil {
		return 0, matrixErrorf(ctxRound, err)
	}

	return roundHalfUp(v, places), nil
}

// roundHalfUp is the unchecked kernel behind RoundValue; places must be >= 0.
func roundHalfUp(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if v == 0 {
		return 0
	}
	if places >= exactPlaces {
		return v
	}
	exact := new(big.Rat).SetFloat64(v)
	num := decimal.NewFromBigInt(exact.Num(), 0)
	den := decimal.NewFromBigInt(exact.Denom(), 0)
	rounded, _ := num.DivRound(den, int32(places)).Float64()
	if rounded == 0 {
		return 0
	}

	return rounded
}

// normalize is the per-cell precision normalizer applied after every arithmetic write.
func normalize(v float64) float64 { return roundHalfUp(v, NormalizedPlaces) }

// Round returns a new matrix with every entry rounded to places decimals.
// Each cell is rounded independently, half away from zero.
// Errors: ErrInvalidArgument when places < 0.
// Complexity: O(r*c) cell roundings.
func (m *Matrix) Round(places int) (*Matrix, error) {
	if err := validatePlaces(places); err != nil {
		return nil, matrixErrorf(ctxRound, err)
	}
	out := m.Clone()
	for idx, v := range out.data {
		out.data[idx] = roundHalfUp(v, places)
	}

	return out, nil
}

// NormalizePrecision returns m rounded to NormalizedPlaces decimals.
func (m *Matrix) NormalizePrecision() *Matrix {
	out := m.Clone()
	for idx, v := range out.data {
		out.data[idx] = normalize(v)
	}

	return out
}
