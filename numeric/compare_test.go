package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mat3/numeric"
	"github.com/stretchr/testify/require"
)

func TestTolerance_AbsoluteAndRelative(t *testing.T) {
	t.Parallel()

	cmp := numeric.Tolerance(1e-6)
	for _, tc := range []struct {
		name string
		x, y float64
		want bool
	}{
		{"equal", 1.5, 1.5, true},
		{"zero vs tiny", 0, 5e-7, true},
		{"zero vs small", 0, 2e-6, false},
		{"large relative", 1e9, 1e9 + 100, true},
		{"large apart", 1e9, 1e9 + 1e4, false},
		{"negative pair", -3, -3 - 5e-7, true},
		{"opposite signs", -1e-3, 1e-3, false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cmp(tc.x, tc.y))
			require.Equal(t, tc.want, cmp(tc.y, tc.x), "comparator must be symmetric")
		})
	}
}

func TestTolerance_NonFinite(t *testing.T) {
	t.Parallel()

	cmp := numeric.Tolerance(1e-3)
	require.False(t, cmp(math.NaN(), math.NaN()))
	require.False(t, cmp(math.NaN(), 0))
	require.True(t, cmp(math.Inf(1), math.Inf(1)))
	require.False(t, cmp(math.Inf(1), math.Inf(-1)))
	require.False(t, cmp(math.Inf(1), 1e300))
}

func TestTolerance_ZeroEpsilonIsExact(t *testing.T) {
	t.Parallel()

	cmp := numeric.Tolerance(0)
	require.True(t, cmp(2, 2))
	require.False(t, cmp(2, math.Nextafter(2, 3)))
}

func TestTolerance_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { numeric.Tolerance(-1) })
	require.Panics(t, func() { numeric.Tolerance(math.NaN()) })
	require.Panics(t, func() { numeric.Tolerance(math.Inf(1)) })
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	require.True(t, numeric.Close(1, 1+numeric.DefaultEpsilon/2))
	require.False(t, numeric.Close(0, 10*numeric.DefaultEpsilon))
	require.True(t, numeric.IsZero(-numeric.DefaultEpsilon))
	require.False(t, numeric.IsZero(1e-7))

	var c numeric.Comparator
	require.NotNil(t, c.OrDefault())
	require.True(t, c.OrDefault()(0, 1e-9))
}
