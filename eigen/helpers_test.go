package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mat3/eigen"
	"github.com/katalvlaran/mat3/matrix"
	"github.com/stretchr/testify/require"
)

// Fixtures.
var (
	diag123   = matrix.Diag(1.0, 2, 3)
	diag321   = matrix.Diag(3.0, 2, 1)
	pairRoot  = matrix.Symmetric(2.0, 2, 3, 1, 0, 0)    // λ = 1, 3, 3
	negPair   = matrix.Symmetric(-2.0, -2, -2, 1, 1, 1) // λ = -3, -3, 0
	tridiag   = matrix.Symmetric(2.0, 2, 2, -1, 0, -1)  // λ = 2-√2, 2, 2+√2
	dense     = matrix.Symmetric(4.0, 3, 5, 1, 2, 0.5)  // three simple roots
	collapses = matrix.Symmetric(3.0, -3, -2, 2, 3, 3)  // D22 equals the middle root
	hugeNear  = matrix.Diag(1e7+1, 1e7+1, 1e7-1)        // discriminant rounding below -1e-10
)

// randomSymmetric draws a symmetric matrix with entries in [-scale, scale).
func randomSymmetric(rng *rand.Rand, scale float64) matrix.Matrix[float64] {
	var x [6]float64
	for k := range x {
		x[k] = (2*rng.Float64() - 1) * scale
	}

	return matrix.Symmetric(x[0], x[1], x[2], x[3], x[4], x[5])
}

// randomIntSymmetric draws a symmetric matrix with integer entries in [-r, r].
func randomIntSymmetric(rng *rand.Rand, r int) matrix.Matrix[float64] {
	var x [6]float64
	for k := range x {
		x[k] = float64(rng.Intn(2*r+1) - r)
	}

	return matrix.Symmetric(x[0], x[1], x[2], x[3], x[4], x[5])
}

// scaleOf is max(1, max|D_ij|).
func scaleOf(d matrix.Matrix[float64]) float64 {
	s := 1.0
	for _, x := range d.Array() {
		s = math.Max(s, math.Abs(x))
	}

	return s
}

// requireEigenpair FAILS unless v is a unit vector with ‖Dv−λv‖ ≤ tol.
func requireEigenpair(t *testing.T, d matrix.Matrix[float64], lambda float64, v matrix.Vector[float64], tol float64) {
	t.Helper()
	require.InDelta(t, 1.0, v.Norm(), 1e-12, "eigenvector must be unit length")
	require.LessOrEqual(t, eigen.Residual(d, lambda, v), tol, "‖Dv−λv‖ for λ=%g v=%v", lambda, v)
}

// requireAscending FAILS unless v[0] ≤ v[1] ≤ v[2].
func requireAscending(t *testing.T, v eigen.Values) {
	t.Helper()
	require.LessOrEqual(t, v[0], v[1], "values %v", v)
	require.LessOrEqual(t, v[1], v[2], "values %v", v)
}
