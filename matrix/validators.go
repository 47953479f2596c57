// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide the canonical precondition checks used before spectral routines.
//  - Return sentinel errors wrapped with the validator tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry runs on the three upper-triangle pairs only.

package matrix

import "github.com/katalvlaran/mat3/numeric"

// IsSymmetric reports whether a(i,j) ≈ a(j,i) for the three off-diagonal
// pairs. Integer matrices compare exactly.
func IsSymmetric[T Number](a Matrix[T], opts ...Option) bool {
	return Equal(a, Transpose(a), opts...)
}

// ValidateSymmetric returns ErrAsymmetry (wrapped with the validator tag) if a
// is not symmetric under the configured comparator.
// AI-Hints: call before eigen routines when the input comes from outside.
func ValidateSymmetric[T Number](a Matrix[T], opts ...Option) error {
	if !IsSymmetric(a, opts...) {
		return matrixErrorf(opValidateSymmetric, ErrAsymmetry)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf if any element of a is NaN or ±Inf.
// Integer matrices always pass.
func ValidateFinite[T Number](a Matrix[T]) error {
	if !isFloat[T]() {
		return nil
	}
	for k := 0; k < size; k++ {
		if numeric.IsNonFinite(float64(a.e[k])) {
			return matrixErrorf(opValidateFinite, ErrNaNInf)
		}
	}

	return nil
}
