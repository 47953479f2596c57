// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/mat3/matrix"
)

const (
	// DiscriminantTolerance bounds how far below zero the discriminant term b0
	// may fall before the input is declared degenerate. Smaller deviations are
	// rounding noise and are folded in through |b0|.
	DiscriminantTolerance = 1e-10

	// MagnitudeFloor is the modulus of A³ below which both cube roots are
	// taken as zero (triple root, e.g. a multiple of the identity).
	MagnitudeFloor = 1e-24
)

// sqrt3over2 is √(3/4).
var sqrt3over2 = math.Sqrt(0.75)

// Eigenvalues returns the three real eigenvalues of the symmetric matrix d in
// ascending order, solving the characteristic cubic in closed form.
//
// Implementation:
//   - Stage 1: characteristic cubic λ³ + pλ² + qλ + r = 0 with
//     p = −tr D, q = sum of principal 2×2 minors, r = −det D.
//   - Stage 2: depress it with λ = x − p/3 into x³ + ax + b = 0.
//   - Stage 3: A³ = a0 + i·b0 with a0 = −b/2, b0 = √(−(b²/4 + a³/27)); take
//     the polar form (magn, theta) and the cube roots A+B, A−B.
//   - Stage 4: the three roots x1 = A+B, x2,3 = −(A+B)/2 ± (√3/2)(A−B),
//     shifted back by −p/3, then sorted.
//
// Behavior highlights:
//   - b0 < −DiscriminantTolerance: returns the zero triple together with
//     ErrDegenerate. A genuine zero matrix returns the zero triple and nil.
//   - magn ≤ MagnitudeFloor: A+B = A−B = 0, so all three roots equal −p/3.
//   - Deterministic; no iteration.
//
// Inputs:
//   - d: symmetric matrix (caller contract; see WithValidateSymmetric).
//
// Errors:
//   - ErrDegenerate, and under opt-in validation ErrNaNInf / ErrAsymmetry,
//     all wrapped as "Eigenvalues: ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func Eigenvalues(d matrix.Matrix[float64], opts ...Option) (Values, error) {
	o := gatherOptions(opts...)
	if err := o.validate(d); err != nil {
		return Values{}, eigenErrorf(opEigenvalues, err)
	}

	vals, err := eigenvalues(d)
	if err != nil {
		return vals, eigenErrorf(opEigenvalues, err)
	}

	return vals, nil
}

// eigenvalues is Eigenvalues without option handling. It returns the bare
// ErrDegenerate.
func eigenvalues(d matrix.Matrix[float64]) (Values, error) {
	d00, d11, d22 := d.At(0, 0), d.At(1, 1), d.At(2, 2)
	d01, d02, d12 := d.At(0, 1), d.At(0, 2), d.At(1, 2)

	p := -(d00 + d11 + d22)
	q := d00*d11 + d00*d22 + d11*d22 - d01*d01 - d02*d02 - d12*d12
	r := d00*d12*d12 + d11*d02*d02 + d22*d01*d01 - d00*d11*d22 - 2*d01*d02*d12

	a := q - p*p/3
	b := 2*p*p*p/27 - p*q/3 + r

	a0 := -0.5 * b
	b0 := -(0.25*b*b + a*a*a/27)
	if b0 < -DiscriminantTolerance {
		return Values{}, ErrDegenerate
	}
	b0 = math.Sqrt(math.Abs(b0))

	theta := math.Atan2(b0, a0)
	magn := math.Sqrt(a0*a0 + b0*b0)

	var apb, amb float64 // A+B, A−B (without the i)
	if magn > MagnitudeFloor {
		c := math.Cbrt(magn)
		apb = 2 * math.Cos(theta/3) * c
		amb = 2 * math.Sin(theta/3) * c
	}

	shift := p / 3
	v := Values{
		apb - shift,
		-0.5*apb + sqrt3over2*amb - shift,
		-0.5*apb - sqrt3over2*amb - shift,
	}
	sort3(&v)

	return v, nil
}

// sort3 orders three values ascending with at most three swaps.
func sort3(v *Values) {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
}
