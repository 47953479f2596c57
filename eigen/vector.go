// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/mat3/matrix"
)

// fallback is returned when the construction collapses to zero length.
var fallback = matrix.Vector[float64]{0, 0, 1}

// Eigenvector returns a unit eigenvector of the symmetric matrix d for the
// eigenvalue lambda by 2×2 cofactor elimination of (D − λI)v = 0 against the
// last row and column.
//
// Implementation:
//   - Degenerate branch, D22−λ ≈ 0: closed form from D02, D12 and the
//     diagonal differences only.
//   - Generic branch: a = D02² − (D00−λ)(D22−λ), c = D12² − (D11−λ)(D22−λ);
//     sign(b) of b = D02·D12 − D01·(D22−λ) is read from a comparison, and
//     sign(a)·sign(b) picks the branch of √a, √c. Square roots take |·| of
//     operands that are on the wrong side of zero by rounding noise.
//   - Normalise; a length ≈ 0 yields the canonical (0,0,1).
//
// Behavior highlights:
//   - Always returns a unit vector; never panics, never errors.
//   - lambda must be an eigenvalue of d (e.g. from Eigenvalues) and d must be
//     symmetric. Anything else yields a meaningless unit vector.
//   - For a repeated eigenvalue the result is some vector, not necessarily in
//     the eigenspace; use Decompose for an orthonormal eigenbasis.
//
// Complexity:
//   - Time O(1), Space O(1).
func Eigenvector(d matrix.Matrix[float64], lambda float64, opts ...Option) matrix.Vector[float64] {
	return eigenvector(d, lambda, gatherOptions(opts...))
}

func eigenvector(d matrix.Matrix[float64], lambda float64, o Options) matrix.Vector[float64] {
	cmp := o.cmp.OrDefault()
	d00, d11, d22 := d.At(0, 0), d.At(1, 1), d.At(2, 2)
	d01, d02, d12 := d.At(0, 1), d.At(0, 2), d.At(1, 2)

	var v matrix.Vector[float64]
	d22l := d22 - lambda
	if cmp(d22l, 0) {
		a := d02 * d12
		v[0] = a - d12*d12
		v[1] = a - d02*d02
		v[2] = d12*(d01-d00+lambda) + d02*(d01-d11+lambda)
	} else {
		a := d02*d02 - (d00-lambda)*d22l
		c := d12*d12 - (d11-lambda)*d22l

		signb := -1
		if d02*d12 > d01*d22l {
			signb = 1
		}

		var sqrta, sqrtc float64
		var signab int
		switch {
		case cmp(a, 0):
			sqrtc = math.Sqrt(math.Abs(c))
		case a > 0:
			signab = signb
			sqrta = math.Sqrt(a)
			if !cmp(c, 0) {
				sqrtc = math.Sqrt(math.Abs(c))
			}
		default:
			signab = -signb
			sqrta = math.Sqrt(-a)
			if !cmp(c, 0) {
				sqrtc = math.Sqrt(math.Abs(c))
			}
		}

		v[0] = d22l * sqrtc
		if signab == 1 {
			v[1] = -sqrta * d22l
			v[2] = -(d02*sqrtc - d12*sqrta)
		} else {
			v[1] = sqrta * d22l
			v[2] = -(d02*sqrtc + d12*sqrta)
		}
	}

	n := v.Norm()
	if cmp(n, 0) {
		return fallback
	}

	return v.Scale(1 / n)
}
