// SPDX-License-Identifier: MIT

// Package matrix: element constraints and the two value types, Matrix and
// Vector. This file contains ONLY type declarations, constructors and
// accessors; arithmetic lives in impl_arithmetic.go, promotion in
// impl_promote.go, comparison in impl_equal.go.
package matrix

// Integer is the set of signed integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the element constraint of Matrix and Vector.
type Number interface {
	Integer | Float
}

// Dim is the fixed dimension of every matrix and vector in this package.
const Dim = 3

// size is the number of elements in the flat row-major buffer.
const size = Dim * Dim

// Matrix is an immutable 3×3 matrix stored as 9 elements in row-major order.
// The zero value is the zero matrix. Every operation returns a new value and
// never writes through its arguments, so a Matrix may be shared freely.
//
// Complexity: all accessors are O(1); the whole value is 9 words and is
// passed by value without heap allocation.
type Matrix[T Number] struct {
	e [size]T // e[idx(i,j)]
}

// Vector is a 3-vector.
type Vector[T Number] [Dim]T

// idx maps (i,j) to the flat row-major index 3i+j.
func idx(i, j int) int { return Dim*i + j }

// New builds a Matrix from nested rows, rows[i][j] being element (i,j).
func New[T Number](rows [Dim][Dim]T) Matrix[T] {
	var m Matrix[T]
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			m.e[idx(i, j)] = rows[i][j]
		}
	}

	return m
}

// FromArray builds a Matrix from its flat row-major 9-element notation:
//
//	| 0 1 2 |
//	| 3 4 5 |
//	| 6 7 8 |
func FromArray[T Number](a [size]T) Matrix[T] { return Matrix[T]{e: a} }

// Identity returns the 3×3 identity.
func Identity[T Number]() Matrix[T] { return Diag[T](1, 1, 1) }

// Diag returns the diagonal matrix diag(a, b, c).
func Diag[T Number](a, b, c T) Matrix[T] {
	return Matrix[T]{e: [size]T{a, 0, 0, 0, b, 0, 0, 0, c}}
}

// Symmetric returns the symmetric matrix with the given diagonal and upper
// triangle; the lower triangle mirrors the upper one.
func Symmetric[T Number](d00, d11, d22, d01, d02, d12 T) Matrix[T] {
	return Matrix[T]{e: [size]T{
		d00, d01, d02,
		d01, d11, d12,
		d02, d12, d22,
	}}
}

// At returns element (i,j). It panics on indices outside [0,3), like an
// array index expression.
func (m Matrix[T]) At(i, j int) T { return m.e[idx(i, j)] }

// With returns a copy of m with element (i,j) replaced by v.
func (m Matrix[T]) With(i, j int, v T) Matrix[T] {
	m.e[idx(i, j)] = v

	return m
}

// Row returns row i as a vector.
func (m Matrix[T]) Row(i int) Vector[T] {
	return Vector[T]{m.e[idx(i, 0)], m.e[idx(i, 1)], m.e[idx(i, 2)]}
}

// Col returns column j as a vector.
func (m Matrix[T]) Col(j int) Vector[T] {
	return Vector[T]{m.e[idx(0, j)], m.e[idx(1, j)], m.e[idx(2, j)]}
}

// Array returns the flat row-major 9-element notation of m.
func (m Matrix[T]) Array() [size]T { return m.e }

// Rows returns m as nested rows; the inverse of New.
func (m Matrix[T]) Rows() [Dim][Dim]T {
	var out [Dim][Dim]T
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[i][j] = m.e[idx(i, j)]
		}
	}

	return out
}

// Trace returns the sum of the diagonal.
func (m Matrix[T]) Trace() T { return m.e[0] + m.e[4] + m.e[8] }
