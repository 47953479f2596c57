// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/mat3/matrix"
)

// Decompose returns the eigenvalues of the symmetric matrix d together with an
// orthonormal eigenvector for each of them.
//
// Implementation:
//   - Stage 1: eigenvalues of (D − sI)/c with s = tr(D)/3 and
//     c = max(1, max|(D − sI)_ij|), mapped back as λ = c·μ + s. The shifted
//     cubic keeps the discriminant well scaled, so large entries with nearly
//     repeated roots are solved instead of reported as degenerate.
//   - Stage 2: group repeated roots: adjacent values closer than
//     repeatTol·c are one root.
//   - Stage 3: vectors, always from the original D.
//     All distinct: the vector of the most isolated root first, then the
//     middle root's vector with that one projected out, then their cross
//     product. Each solved vector comes from Eigenvector and is accepted when
//     ‖Dv−λv‖ stays under residualTol·max(1, max|D_ij|), otherwise rebuilt
//     from the largest cross product of two rows of D−λI.
//     One repeated pair: the distinct value's vector as above; the pair's
//     eigenspace is its orthogonal complement, spanned by two cross products.
//     Triple root: D is a multiple of I and the standard basis is returned.
//
// Behavior highlights:
//   - Vectors[i] belongs to Values[i]; the set is orthonormal.
//   - Values may differ from Eigenvalues(d) in the last bits.
//   - On error the zero Decomposition is returned.
//
// Errors:
//   - ErrDegenerate, ErrNaNInf, ErrAsymmetry wrapped as "Decompose: ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func Decompose(d matrix.Matrix[float64], opts ...Option) (Decomposition, error) {
	o := gatherOptions(opts...)
	if err := o.validate(d); err != nil {
		return Decomposition{}, eigenErrorf(opDecompose, err)
	}
	vals, spread, err := shiftedEigenvalues(d)
	if err != nil {
		return Decomposition{}, eigenErrorf(opDecompose, err)
	}

	gap := o.repeatTol * spread
	rep01 := vals[1]-vals[0] <= gap
	rep12 := vals[2]-vals[1] <= gap

	out := Decomposition{Values: vals}
	switch {
	case rep01 && rep12:
		out.Vectors = [3]matrix.Vector[float64]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	case rep12:
		v0 := solveVector(d, vals[0], o)
		u := perpendicular(v0)
		out.Vectors = [3]matrix.Vector[float64]{v0, u, v0.Cross(u)}
	case rep01:
		v2 := solveVector(d, vals[2], o)
		u := perpendicular(v2)
		out.Vectors = [3]matrix.Vector[float64]{u, v2.Cross(u), v2}
	default:
		// The root with the wider gap to the middle one is the most isolated.
		first, last := 0, 2
		if vals[2]-vals[1] > vals[1]-vals[0] {
			first, last = 2, 0
		}
		v := solveVector(d, vals[first], o)
		m := orthogonalize(solveVector(d, vals[1], o), v)
		out.Vectors[first] = v
		out.Vectors[1] = m
		out.Vectors[last], _ = v.Cross(m).Normalize()
	}

	return out, nil
}

// shiftedEigenvalues solves the cubic of (D − sI)/c, maps the roots back and
// returns c. c > 0, so the ascending order carries over.
func shiftedEigenvalues(d matrix.Matrix[float64]) (Values, float64, error) {
	shift := d.Trace() / 3
	n := matrix.Sub(d, matrix.Scale(matrix.Identity[float64](), shift))
	c := elementScale(n)
	mu, err := eigenvalues(matrix.Scale(n, 1/c))
	if err != nil {
		return Values{}, 0, err
	}
	for i := range mu {
		mu[i] = c*mu[i] + shift
	}

	return mu, c, nil
}

// orthogonalize removes the component of v along the unit vector u and
// normalises the rest. When nothing is left it returns a vector
// perpendicular to u.
func orthogonalize(v, u matrix.Vector[float64]) matrix.Vector[float64] {
	w, ok := v.Sub(u.Scale(v.Dot(u))).Normalize()
	if !ok {
		return perpendicular(u)
	}

	return w
}

// Residual returns ‖D·v − λ·v‖.
func Residual(d matrix.Matrix[float64], lambda float64, v matrix.Vector[float64]) float64 {
	return matrix.MulVec(d, v).Sub(v.Scale(lambda)).Norm()
}

// solveVector runs Eigenvector and falls back to rowCross when the result
// does not satisfy the eigen-equation within the residual tolerance.
func solveVector(d matrix.Matrix[float64], lambda float64, o Options) matrix.Vector[float64] {
	v := eigenvector(d, lambda, o)
	if Residual(d, lambda, v) <= o.residualTol*elementScale(d) {
		return v
	}

	return rowCross(d, lambda)
}

// rowCross returns the normalised largest cross product of two rows of D−λI.
// For a simple eigenvalue D−λI has rank 2 and every such cross product is
// parallel to the null vector; the largest one is the best conditioned.
func rowCross(d matrix.Matrix[float64], lambda float64) matrix.Vector[float64] {
	var rows [3]matrix.Vector[float64]
	for i := range rows {
		rows[i] = d.Row(i)
		rows[i][i] -= lambda
	}

	best := rows[0].Cross(rows[1])
	bestNorm := best.Norm()
	for _, c := range []matrix.Vector[float64]{rows[0].Cross(rows[2]), rows[1].Cross(rows[2])} {
		if n := c.Norm(); n > bestNorm {
			best, bestNorm = c, n
		}
	}
	if bestNorm == 0 {
		return fallback
	}

	return best.Scale(1 / bestNorm)
}

// perpendicular returns a unit vector orthogonal to the unit vector v, built
// against the axis v is least aligned with.
func perpendicular(v matrix.Vector[float64]) matrix.Vector[float64] {
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(v[i]) < math.Abs(v[axis]) {
			axis = i
		}
	}
	var e matrix.Vector[float64]
	e[axis] = 1
	u, _ := v.Cross(e).Normalize()

	return u
}

// elementScale is max(1, max|D_ij|).
func elementScale(d matrix.Matrix[float64]) float64 {
	s := 1.0
	for _, x := range d.Array() {
		s = math.Max(s, math.Abs(x))
	}

	return s
}
