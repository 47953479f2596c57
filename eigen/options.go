// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/mat3/matrix"
	"github.com/katalvlaran/mat3/numeric"
)

// Defaults (single source of truth).
const (
	// DefaultRepeatTolerance is the relative gap, scaled by
	// max(1, max|(D − tr(D)/3·I)_ij|), under which Decompose treats two
	// eigenvalues as one repeated root.
	DefaultRepeatTolerance = 1e-6

	// DefaultResidualTolerance is the relative residual ‖Dv−λv‖, scaled by
	// max(1, max|D_ij|), above which Decompose rebuilds an eigenvector.
	DefaultResidualTolerance = 1e-9

	// DefaultValidateSymmetric toggles the symmetry precondition check.
	DefaultValidateSymmetric = false

	// DefaultValidateFinite toggles the NaN/Inf precondition check.
	DefaultValidateFinite = false
)

const (
	panicEpsilonInvalid    = "eigen: WithEpsilon: eps must be finite, non-negative"
	panicComparatorInvalid = "eigen: WithComparator: comparator must not be nil"
	panicRepeatInvalid     = "eigen: WithRepeatTolerance: tol must be finite, non-negative"
	panicResidualInvalid   = "eigen: WithResidualTolerance: tol must be finite, positive"
)

// Option configures the eigen solvers.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported.
type Options struct {
	cmp               numeric.Comparator // branch selection and zero tests
	repeatTol         float64            // Decompose grouping of repeated roots
	residualTol       float64            // Decompose acceptance of solver vectors
	validateSymmetric bool
	validateFinite    bool
}

// WithEpsilon sets the comparator to numeric.Tolerance(eps).
// Panics on negative, NaN or ±Inf eps.
func WithEpsilon(eps float64) Option {
	if numeric.IsNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	cmp := numeric.Tolerance(eps)

	return func(o *Options) { o.cmp = cmp }
}

// WithComparator injects the closeness predicate used by the eigenvector
// branch selection and, under WithValidateSymmetric, by the symmetry check.
// Pass the same comparator you give matrix.Equal to keep results consistent.
func WithComparator(c numeric.Comparator) Option {
	if c == nil {
		panic(panicComparatorInvalid)
	}

	return func(o *Options) { o.cmp = c }
}

// WithRepeatTolerance overrides DefaultRepeatTolerance.
func WithRepeatTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRepeatInvalid)
	}

	return func(o *Options) { o.repeatTol = tol }
}

// WithResidualTolerance overrides DefaultResidualTolerance.
func WithResidualTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicResidualInvalid)
	}

	return func(o *Options) { o.residualTol = tol }
}

// WithValidateSymmetric makes Eigenvalues and Decompose fail with ErrAsymmetry
// on asymmetric input instead of returning undefined numbers.
func WithValidateSymmetric() Option { return func(o *Options) { o.validateSymmetric = true } }

// WithValidateFinite makes Eigenvalues and Decompose fail with ErrNaNInf on
// NaN or ±Inf input.
func WithValidateFinite() Option { return func(o *Options) { o.validateFinite = true } }

func gatherOptions(user ...Option) Options {
	o := Options{
		cmp:               numeric.Default,
		repeatTol:         DefaultRepeatTolerance,
		residualTol:       DefaultResidualTolerance,
		validateSymmetric: DefaultValidateSymmetric,
		validateFinite:    DefaultValidateFinite,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate runs the opt-in precondition checks in a fixed order:
// finite, then symmetric. It returns bare sentinels; callers add their tag.
func (o Options) validate(d matrix.Matrix[float64]) error {
	if o.validateFinite {
		for _, x := range d.Array() {
			if numeric.IsNonFinite(x) {
				return ErrNaNInf
			}
		}
	}
	if o.validateSymmetric && !matrix.IsSymmetric(d, matrix.WithComparator(o.cmp)) {
		return ErrAsymmetry
	}

	return nil
}
