// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded math/rand) for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mat3/matrix"
)

// seq is the integer fixture 1..9 in row-major order.
var seq = matrix.FromArray([9]int{1, 2, 3, 4, 5, 6, 7, 8, 9})

// randomMatrix FILLS a float64 matrix with uniform values in [-scale, scale).
// Deterministic for a given rng state.
func randomMatrix(rng *rand.Rand, scale float64) matrix.Matrix[float64] {
	var a [9]float64
	for k := range a {
		a[k] = (2*rng.Float64() - 1) * scale
	}

	return matrix.FromArray(a)
}

// randomIntMatrix FILLS an int matrix with values in [-r, r].
func randomIntMatrix(rng *rand.Rand, r int) matrix.Matrix[int] {
	var a [9]int
	for k := range a {
		a[k] = rng.Intn(2*r+1) - r
	}

	return matrix.FromArray(a)
}

// requireClose FAILS the test unless |want(i,j) − got(i,j)| ≤ tol everywhere.
func requireClose(t *testing.T, want, got matrix.Matrix[float64], tol float64) {
	t.Helper()
	for i := 0; i < matrix.Dim; i++ {
		for j := 0; j < matrix.Dim; j++ {
			if d := math.Abs(want.At(i, j) - got.At(i, j)); d > tol {
				t.Fatalf("element (%d,%d): want %g, got %g (|Δ|=%g > %g)", i, j, want.At(i, j), got.At(i, j), d, tol)
			}
		}
	}
}
