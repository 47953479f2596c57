// SPDX-License-Identifier: MIT
// Package matrix: closed-form 3×3 kernels.
//
// Purpose:
//   - Provide the arithmetic primitives consumed by the eigen package and by
//     callers: determinant, adjugate/inverse, transpose, cyclic rotation,
//     products, scaling, symmetric self-product and metric squared norms.
//
// Notes:
//   - Every kernel is generic over Number; mixed int/float operands go through
//     the *Float promotions in impl_promote.go.
//   - Kernels are unrolled where the closed form is shorter than the loop.
//   - Results are always fresh values; inputs are never written.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opInverse           = "Inverse"
	opValidateSymmetric = "ValidateSymmetric"
	opValidateFinite    = "ValidateFinite"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Det returns the determinant of a by cofactor expansion along row 0.
// Exact for integer element types (up to overflow of T).
//
// Complexity: 9 multiplications, O(1).
func Det[T Number](a Matrix[T]) T {
	x := &a.e

	return x[0]*(x[4]*x[8]-x[5]*x[7]) +
		x[1]*(x[6]*x[5]-x[3]*x[8]) +
		x[2]*(x[3]*x[7]-x[6]*x[4])
}

// Adjugate returns the adjugate of a (the transposed cofactor matrix) together
// with det(a). The true inverse is adj/det.
//
// Behavior highlights:
//   - No zero check: for det == 0 the adjugate is still returned and dividing
//     by det is the caller's responsibility. Use Inverse for a checked form.
//   - Exact for integer element types.
//
// Complexity:
//   - Time O(1), Space O(1).
func Adjugate[T Number](a Matrix[T]) (Matrix[T], T) {
	x := &a.e
	adj := Matrix[T]{e: [size]T{
		x[4]*x[8] - x[5]*x[7],
		x[2]*x[7] - x[1]*x[8],
		x[1]*x[5] - x[2]*x[4],

		x[5]*x[6] - x[3]*x[8],
		x[0]*x[8] - x[2]*x[6],
		x[2]*x[3] - x[0]*x[5],

		x[3]*x[7] - x[4]*x[6],
		x[1]*x[6] - x[0]*x[7],
		x[0]*x[4] - x[1]*x[3],
	}}

	return adj, Det(a)
}

// Inverse returns a⁻¹ in float64.
// Returns ErrSingular (wrapped as "Inverse: ...") when det(a) is exactly zero;
// near-singular input is inverted as-is.
func Inverse[T Number](a Matrix[T]) (Matrix[float64], error) {
	adj, det := Adjugate(a)
	if det == 0 {
		return Matrix[float64]{}, matrixErrorf(opInverse, ErrSingular)
	}

	return ScaleFloat(adj, 1/float64(det)), nil
}

// Transpose returns aᵗ: b(i,j) = a(j,i).
func Transpose[T Number](a Matrix[T]) Matrix[T] {
	var b Matrix[T]
	for k := 0; k < size; k++ {
		b.e[k] = a.e[idx(k%Dim, k/Dim)]
	}

	return b
}

// Rotate cyclically relabels the column axes of a by k:
// b(i,j) = a(i, (j+k) mod 3). Any k is accepted; negative values rotate the
// other way. Rotate(a,0) == a and Rotate(Rotate(a,1),2) == a.
func Rotate[T Number](a Matrix[T], k int) Matrix[T] {
	k %= Dim
	if k < 0 {
		k += Dim
	}
	var b Matrix[T]
	for n := 0; n < size; n++ {
		b.e[n] = a.e[idx(n/Dim, (n%Dim+k)%Dim)]
	}

	return b
}

// Mul returns the matrix product a·b.
//
// Complexity: 27 multiplications, O(1).
func Mul[T Number](a, b Matrix[T]) Matrix[T] {
	var c Matrix[T]
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			c.e[idx(i, j)] = a.e[idx(i, 0)]*b.e[idx(0, j)] +
				a.e[idx(i, 1)]*b.e[idx(1, j)] +
				a.e[idx(i, 2)]*b.e[idx(2, j)]
		}
	}

	return c
}

// MulVec returns the matrix-vector product a·v.
func MulVec[T Number](a Matrix[T], v Vector[T]) Vector[T] {
	x := &a.e

	return Vector[T]{
		x[0]*v[0] + x[1]*v[1] + x[2]*v[2],
		x[3]*v[0] + x[4]*v[1] + x[5]*v[2],
		x[6]*v[0] + x[7]*v[1] + x[8]*v[2],
	}
}

// InnerProduct returns uᵗ·a·v = Σ_i Σ_j u_i a(i,j) v_j, evaluated in one pass
// without forming a·v.
func InnerProduct(u Vector[float64], a Matrix[float64], v Vector[float64]) float64 {
	var sum float64
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			sum += u[i] * a.e[idx(i, j)] * v[j]
		}
	}

	return sum
}

// Add returns the element-wise sum a + b.
func Add[T Number](a, b Matrix[T]) Matrix[T] { return addSub(a, b, 1) }

// Sub returns the element-wise difference a − b.
func Sub[T Number](a, b Matrix[T]) Matrix[T] { return addSub(a, b, -1) }

// addSub computes a + sign·b for sign ∈ {+1, −1} in a single flat loop.
func addSub[T Number](a, b Matrix[T], sign T) Matrix[T] {
	var c Matrix[T]
	for k := 0; k < size; k++ {
		c.e[k] = a.e[k] + sign*b.e[k]
	}

	return c
}

// Scale returns s·a elementwise.
func Scale[T Number](a Matrix[T], s T) Matrix[T] {
	var c Matrix[T]
	for k := 0; k < size; k++ {
		c.e[k] = s * a.e[k]
	}

	return c
}

// ScaleLeft is Scale with the scalar first; s·a == a·s.
func ScaleLeft[T Number](s T, a Matrix[T]) Matrix[T] { return Scale(a, s) }

// SelfProduct returns aᵗ·a. The product is symmetric, so only the six
// upper-triangle entries are computed and mirrored.
func SelfProduct[T Number](a Matrix[T]) Matrix[T] {
	x := &a.e
	var s Matrix[T]
	s.e[0] = x[0]*x[0] + x[3]*x[3] + x[6]*x[6]
	s.e[1] = x[0]*x[1] + x[3]*x[4] + x[6]*x[7]
	s.e[2] = x[0]*x[2] + x[3]*x[5] + x[6]*x[8]
	s.e[4] = x[1]*x[1] + x[4]*x[4] + x[7]*x[7]
	s.e[5] = x[1]*x[2] + x[4]*x[5] + x[7]*x[8]
	s.e[8] = x[2]*x[2] + x[5]*x[5] + x[8]*x[8]
	s.e[3] = s.e[1]
	s.e[6] = s.e[2]
	s.e[7] = s.e[5]

	return s
}

// MagnSq returns the squared magnitude u·metric·u of u under a SYMMETRIC
// metric, reading only the diagonal and upper triangle:
//
//	m00 u0² + m11 u1² + m22 u2² + 2(m01 u0u1 + m02 u0u2 + m12 u1u2)
//
// The lower triangle of metric is ignored.
func MagnSq[T Number](metric Matrix[T], u Vector[T]) T {
	m := &metric.e

	return m[0]*u[0]*u[0] + m[4]*u[1]*u[1] + m[8]*u[2]*u[2] +
		2*(m[1]*u[0]*u[1]+m[2]*u[0]*u[2]+m[5]*u[1]*u[2])
}
