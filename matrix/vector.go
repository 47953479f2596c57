// SPDX-License-Identifier: MIT

package matrix

import "math"

// Dot returns u·v.
func (u Vector[T]) Dot(v Vector[T]) T { return u[0]*v[0] + u[1]*v[1] + u[2]*v[2] }

// Cross returns u×v.
func (u Vector[T]) Cross(v Vector[T]) Vector[T] {
	return Vector[T]{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Add returns u+v.
func (u Vector[T]) Add(v Vector[T]) Vector[T] { return Vector[T]{u[0] + v[0], u[1] + v[1], u[2] + v[2]} }

// Sub returns u−v.
func (u Vector[T]) Sub(v Vector[T]) Vector[T] { return Vector[T]{u[0] - v[0], u[1] - v[1], u[2] - v[2]} }

// Scale returns s·u.
func (u Vector[T]) Scale(s T) Vector[T] { return Vector[T]{s * u[0], s * u[1], s * u[2]} }

// Norm returns the Euclidean length of u in float64.
func (u Vector[T]) Norm() float64 {
	x, y, z := float64(u[0]), float64(u[1]), float64(u[2])

	return math.Sqrt(x*x + y*y + z*z)
}

// Normalize returns u/‖u‖ in float64 and false when ‖u‖ is exactly zero
// (the zero vector is returned in that case).
func (u Vector[T]) Normalize() (Vector[float64], bool) {
	n := u.Norm()
	if n == 0 {
		return Vector[float64]{}, false
	}
	inv := 1 / n

	return Vector[float64]{float64(u[0]) * inv, float64(u[1]) * inv, float64(u[2]) * inv}, true
}
