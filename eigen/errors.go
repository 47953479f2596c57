// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mat3/matrix"
)

// Sentinel errors returned by the eigen solvers.
var (
	// ErrDegenerate indicates that the discriminant term of the characteristic
	// cubic came out below -DiscriminantTolerance, which theory excludes for a
	// symmetric input. The accompanying Values are the zero triple.
	ErrDegenerate = errors.New("eigen: characteristic cubic numerically degenerate")

	// ErrAsymmetry is returned under WithValidateSymmetric for asymmetric input.
	ErrAsymmetry = matrix.ErrAsymmetry

	// ErrNaNInf is returned under WithValidateFinite for NaN or ±Inf input.
	ErrNaNInf = matrix.ErrNaNInf
)

const (
	opEigenvalues = "Eigenvalues"
	opDecompose   = "Decompose"
)

// eigenErrorf wraps err with an operation tag; errors.Is still matches.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
