// Package matrix provides closed-form linear algebra on fixed-size 3×3
// matrices and 3-vectors.
//
// What & Why:
//
//	Matrix[T] and Vector[T] are small value types generic over integer and
//	floating element types. Every operation is a pure function returning a
//	fresh value: there are no output parameters, no aliasing hazards and no
//	heap allocation. The row-major layout (index 3i+j) is internal; callers use
//	At, Row, Col, or the explicit Array/FromArray conversions.
//
// Operations:
//
//   - Det, Adjugate (adjugate + determinant), Inverse (checked, float64)
//   - Transpose, Rotate (cyclic relabeling of column axes)
//   - Add, Sub, Mul, MulVec, InnerProduct (uᵗ·a·v), Scale / ScaleLeft
//   - SelfProduct (aᵗ·a with six products), MagnSq (u·metric·u)
//   - Equal / VecEqual (exact for integers, comparator-based for floats)
//   - ToFloat64 and the *Float variants for mixed int/float operands
//   - IsSymmetric, ValidateSymmetric, ValidateFinite
//
// Numeric policy:
//
//	Floating comparisons go through a numeric.Comparator, by default
//	numeric.Default (absolute-or-relative, eps = 1e-8). WithEpsilon and
//	WithComparator override it per call.
//
// Errors:
//
//	ErrSingular from Inverse, ErrAsymmetry and ErrNaNInf from validators,
//	wrapped as "<Op>: <sentinel>" and matched with errors.Is.
//
// Concurrency:
//
//	All functions are safe for concurrent use; nothing is shared or mutated.
package matrix
