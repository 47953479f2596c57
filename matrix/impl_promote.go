// SPDX-License-Identifier: MIT
// Package matrix: mixed-type promotion.
//
// Promotion rule: when the operands of a product have different element types,
// or one of them is floating-point, both are widened to float64 and the result
// is float64. Operands of one common type use the plain kernels (Mul, MulVec,
// Scale, MagnSq) and keep that type.

package matrix

// ToFloat64 widens every element of a to float64.
func ToFloat64[T Number](a Matrix[T]) Matrix[float64] {
	var b Matrix[float64]
	for k := 0; k < size; k++ {
		b.e[k] = float64(a.e[k])
	}

	return b
}

// VecToFloat64 widens every component of v to float64.
func VecToFloat64[T Number](v Vector[T]) Vector[float64] {
	return Vector[float64]{float64(v[0]), float64(v[1]), float64(v[2])}
}

// MulFloat returns a·b in float64 for any pair of element types.
func MulFloat[A, B Number](a Matrix[A], b Matrix[B]) Matrix[float64] {
	return Mul(ToFloat64(a), ToFloat64(b))
}

// MulVecFloat returns a·v in float64 for any pair of element types.
func MulVecFloat[A, B Number](a Matrix[A], v Vector[B]) Vector[float64] {
	return MulVec(ToFloat64(a), VecToFloat64(v))
}

// ScaleFloat returns s·a in float64; use it for an integer matrix times a
// floating scalar.
func ScaleFloat[A Number](a Matrix[A], s float64) Matrix[float64] {
	return Scale(ToFloat64(a), s)
}

// MagnSqFloat returns u·metric·u in float64 for any pair of element types.
func MagnSqFloat[A, B Number](metric Matrix[A], u Vector[B]) float64 {
	return MagnSq(ToFloat64(metric), VecToFloat64(u))
}
