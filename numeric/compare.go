// SPDX-License-Identifier: MIT

package numeric

import "math"

// DefaultEpsilon is the tolerance used by Default, Close and IsZero.
const DefaultEpsilon = 1e-8

const panicEpsilonInvalid = "numeric: Tolerance: eps must be finite, non-negative"

// Comparator reports whether two floating-point values are close enough to be
// treated as equal. Implementations must be symmetric and deterministic.
type Comparator func(x, y float64) bool

// Default is the package-wide comparator built from DefaultEpsilon.
var Default = Tolerance(DefaultEpsilon)

// Tolerance builds an absolute-or-relative Comparator with threshold eps.
//
// Behavior highlights:
//   - x ≈ y iff |x−y| ≤ eps, or |x−y| ≤ eps·max(|x|,|y|).
//   - Bit-equal values (including equal infinities) are always close.
//   - NaN is never close to anything, itself included.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf
//     (programmer error, same policy as the option constructors).
//
// Complexity:
//   - Time O(1), Space O(1).
func Tolerance(eps float64) Comparator {
	if IsNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(x, y float64) bool {
		if x == y {
			return true
		}
		diff := math.Abs(x - y)
		if math.IsNaN(diff) || math.IsInf(diff, 0) {
			return false
		}
		if diff <= eps {
			return true
		}

		return diff <= eps*math.Max(math.Abs(x), math.Abs(y))
	}
}

// Close reports x ≈ y under Default.
func Close(x, y float64) bool { return Default(x, y) }

// IsZero reports x ≈ 0 under Default.
// Against zero the relative arm never fires, so this is |x| ≤ DefaultEpsilon.
func IsZero(x float64) bool { return Default(x, 0) }

// IsNonFinite reports whether x is NaN or ±Inf.
func IsNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// OrDefault returns c, or Default when c is nil.
func (c Comparator) OrDefault() Comparator {
	if c == nil {
		return Default
	}

	return c
}
