// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Functions return these
// sentinels (optionally wrapped as "<Op>: <sentinel>") and tests match them via
// errors.Is. Arithmetic never panics on numeric input; panics are reserved for
// invalid option parameters and out-of-range indices (programmer errors).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistent grepping.
var (
	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry under the configured comparator.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf element where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
