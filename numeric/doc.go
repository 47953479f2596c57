// Package numeric holds the floating-point comparison policy shared by the
// matrix and eigen packages.
//
// Why a dedicated package:
//
//	Approximate equality of matrices, the degeneracy branch of the eigenvector
//	solver and the normalisation fallback all make the same decision: "is this
//	number close enough to that one?". Their results stay consistent only if
//	they answer it with the same threshold. Comparator is that single answer,
//	and every consumer accepts one through its functional options.
//
// Predicate:
//
//	Tolerance(eps) returns a Comparator that reports x ≈ y when
//
//	    |x − y| ≤ eps                    (absolute, for values near zero)
//	    |x − y| ≤ eps · max(|x|, |y|)    (relative, for large magnitudes)
//
//	NaN is never close to anything; equal infinities are close.
//
// Defaults:
//
//	DefaultEpsilon = 1e-8. Close and IsZero use it.
//
// Complexity:
//
//	Every function here is O(1) and allocation-free.
package numeric
