// SPDX-License-Identifier: MIT

package eigen

import "github.com/katalvlaran/mat3/matrix"

// Values is an eigenvalue triple in ascending order.
type Values [3]float64

// Sum returns λ0+λ1+λ2, which equals the trace of the source matrix.
func (v Values) Sum() float64 { return v[0] + v[1] + v[2] }

// Product returns λ0·λ1·λ2, which equals the determinant of the source matrix.
func (v Values) Product() float64 { return v[0] * v[1] * v[2] }

// Decomposition is a full eigen-decomposition D = Q·diag(Values)·Qᵗ where the
// columns of Q are Vectors[0..2]. Vectors[i] belongs to Values[i]; the three
// vectors are orthonormal.
type Decomposition struct {
	Values  Values
	Vectors [3]matrix.Vector[float64]
}

// Basis returns Q, the matrix whose columns are the eigenvectors.
func (d Decomposition) Basis() matrix.Matrix[float64] {
	var rows [3][3]float64
	for j, v := range d.Vectors {
		for i := 0; i < 3; i++ {
			rows[i][j] = v[i]
		}
	}

	return matrix.New(rows)
}

// Reconstruct returns Q·diag(Values)·Qᵗ.
func (d Decomposition) Reconstruct() matrix.Matrix[float64] {
	q := d.Basis()
	l := matrix.Diag(d.Values[0], d.Values[1], d.Values[2])

	return matrix.Mul(matrix.Mul(q, l), matrix.Transpose(q))
}
