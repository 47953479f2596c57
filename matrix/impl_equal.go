// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether a and b match element by element.
//
// Behavior highlights:
//   - Integer element types compare exactly; options are ignored.
//   - Floating element types compare through the configured comparator
//     (numeric.Default unless WithEpsilon/WithComparator is given). Every
//     pair must pass; one failing element makes the matrices unequal.
//
// Complexity:
//   - Time O(1) (9 comparisons, short-circuit), Space O(1).
func Equal[T Number](a, b Matrix[T], opts ...Option) bool {
	if !isFloat[T]() {
		return a == b
	}
	cmp := gatherOptions(opts...).Comparator()
	for k := 0; k < size; k++ {
		if !cmp(float64(a.e[k]), float64(b.e[k])) {
			return false
		}
	}

	return true
}

// VecEqual is Equal for vectors.
func VecEqual[T Number](u, v Vector[T], opts ...Option) bool {
	if !isFloat[T]() {
		return u == v
	}
	cmp := gatherOptions(opts...).Comparator()
	for k := 0; k < Dim; k++ {
		if !cmp(float64(u[k]), float64(v[k])) {
			return false
		}
	}

	return true
}

// isFloat reports whether T is a floating-point type: integer division
// truncates 1/2 to zero, floating division does not.
func isFloat[T Number]() bool {
	one, two := T(1), T(2)

	return one/two != 0
}
