// Package eigen computes eigenvalues and eigenvectors of symmetric 3×3
// matrices analytically, without iteration.
//
// Overview:
//
//   - Eigenvalues solves the characteristic cubic λ³ + pλ² + qλ + r = 0 by
//     Cardano's method in trigonometric form. A real symmetric matrix always
//     has three real roots, so the discriminant term is non-negative up to
//     rounding; the roots come back sorted ascending.
//   - Eigenvector turns one eigenvalue into a unit eigenvector by 2×2 cofactor
//     elimination of (D − λI)v = 0, with a dedicated branch when D22 − λ ≈ 0.
//   - Decompose combines both into an orthonormal eigenbasis, including
//     repeated roots where a single eigenvector is not unique.
//
// When to use:
//
//   - Principal axes of inertia or covariance tensors, strain/stress tensors,
//     metric tensors: anywhere a fixed 3×3 symmetric matrix needs its spectrum
//     with constant cost and bit-reproducible output.
//   - For general N×N or non-symmetric input use an iterative solver instead.
//
// Numerical contract:
//
//   - DiscriminantTolerance (1e-10) and MagnitudeFloor (1e-24) are fixed.
//     Because the discriminant is compared with an absolute threshold, inputs
//     with large entries and nearly repeated roots may report ErrDegenerate.
//     Decompose solves the shifted and scaled matrix (D − tr(D)/3·I)/c instead
//     and does not hit this limit.
//   - Near repeated roots the cubic is ill-conditioned: a close pair loses
//     about half the digits (≈√ε·‖D‖), a close triple about two thirds
//     (≈∛ε·‖D‖). Well-separated roots keep full precision.
//   - Branch decisions in Eigenvector use a numeric.Comparator (default
//     numeric.Default); inject the same one used elsewhere with WithComparator.
//
// Error handling (sentinel errors):
//
//   - ErrDegenerate: the discriminant fell below −1e-10. The Values returned
//     with it are the zero triple, so callers that only read values see the
//     historical zero-triple fallback, while errors.Is tells it apart from a
//     genuine zero matrix.
//   - ErrAsymmetry / ErrNaNInf: opt-in precondition checks
//     (WithValidateSymmetric, WithValidateFinite). Off by default.
//   - Eigenvector never fails; it assumes its lambda is an eigenvalue.
//
// Example usage:
//
//	d := matrix.Symmetric(2.0, 2, 3, 1, 0, 0)
//	vals, err := eigen.Eigenvalues(d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := eigen.Eigenvector(d, vals[0])
//
// Concurrency:
//
//	All functions are pure and safe for concurrent use.
package eigen
