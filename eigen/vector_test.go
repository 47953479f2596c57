package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mat3/eigen"
	"github.com/katalvlaran/mat3/matrix"
	"github.com/katalvlaran/mat3/numeric"
	"github.com/stretchr/testify/require"
)

func TestEigenvector_SimpleRoots(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		d    matrix.Matrix[float64]
	}{
		{"diag 1,2,3", diag123},
		{"diag 3,2,1", diag321},
		{"tridiagonal", tridiag},
		{"dense", dense},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			vals, err := eigen.Eigenvalues(tc.d)
			require.NoError(t, err)
			for _, l := range vals {
				requireEigenpair(t, tc.d, l, eigen.Eigenvector(tc.d, l), 1e-9)
			}
		})
	}
}

func TestEigenvector_AxisAligned(t *testing.T) {
	t.Parallel()

	v := eigen.Eigenvector(diag123, 2)
	require.InDelta(t, 0, v[0], 1e-12)
	require.InDelta(t, 1, math.Abs(v[1]), 1e-12)
	require.InDelta(t, 0, v[2], 1e-12)

	v = eigen.Eigenvector(diag123, 1)
	require.InDelta(t, 1, math.Abs(v[0]), 1e-12)

	// λ = D22 takes the degenerate branch, which collapses to the fallback.
	require.Equal(t, matrix.Vector[float64]{0, 0, 1}, eigen.Eigenvector(diag123, 3))
}

func TestEigenvector_Tridiagonal(t *testing.T) {
	t.Parallel()

	h := math.Sqrt2 / 2
	v := eigen.Eigenvector(tridiag, 2-math.Sqrt2)
	require.InDelta(t, 0.5, v[0], 1e-9)
	require.InDelta(t, h, v[1], 1e-9)
	require.InDelta(t, 0.5, v[2], 1e-9)
}

func TestEigenvector_IdentityDoesNotCrash(t *testing.T) {
	t.Parallel()

	v := eigen.Eigenvector(matrix.Identity[float64](), 1)
	require.InDelta(t, 1.0, v.Norm(), 1e-15)
	requireEigenpair(t, matrix.Identity[float64](), 1, v, 0)

	v = eigen.Eigenvector(matrix.Matrix[float64]{}, 0)
	require.Equal(t, matrix.Vector[float64]{0, 0, 1}, v)
}

func TestEigenvector_AlwaysUnit(t *testing.T) {
	t.Parallel()

	// Even a lambda that is not an eigenvalue yields a unit vector.
	rng := rand.New(rand.NewSource(4242))
	for n := 0; n < 1000; n++ {
		d := randomSymmetric(rng, 5)
		l := (2*rng.Float64() - 1) * 10
		v := eigen.Eigenvector(d, l)
		require.InDelta(t, 1.0, v.Norm(), 1e-12, "d=%v λ=%g", d.Rows(), l)
	}
}

func TestEigenvector_InjectedComparator(t *testing.T) {
	t.Parallel()

	vals, err := eigen.Eigenvalues(dense)
	require.NoError(t, err)

	// A comparator that calls everything equal forces the degenerate branch
	// and then the zero-length fallback.
	always := numeric.Comparator(func(x, y float64) bool { return true })
	require.Equal(t, matrix.Vector[float64]{0, 0, 1}, eigen.Eigenvector(dense, vals[1], eigen.WithComparator(always)))

	// An exact comparator agrees with the default on well-separated roots.
	requireEigenpair(t, dense, vals[1], eigen.Eigenvector(dense, vals[1], eigen.WithEpsilon(0)), 1e-9)
}

func TestEigenvector_KnownCollapse(t *testing.T) {
	t.Parallel()

	vals, err := eigen.Eigenvalues(collapses)
	require.NoError(t, err)
	// D22 coincides with the middle root; the closed form loses the direction.
	require.Equal(t, matrix.Vector[float64]{0, 0, 1}, eigen.Eigenvector(collapses, vals[1]))
	require.Greater(t, eigen.Residual(collapses, vals[1], matrix.Vector[float64]{0, 0, 1}), 1.0)
}
