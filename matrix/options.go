// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state beyond documented defaults.
//   - One comparator per call: every float decision inside a call uses the
//     same numeric.Comparator, so results stay mutually consistent.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "github.com/katalvlaran/mat3/numeric"

// DefaultEpsilon is the tolerance behind the default comparator.
const DefaultEpsilon = numeric.DefaultEpsilon

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicComparatorInvalid = "matrix: WithComparator: comparator must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	cmp numeric.Comparator // float closeness; numeric.Default
}

// WithEpsilon replaces the comparator with numeric.Tolerance(eps).
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer small positive eps (1e-8..1e-12) for double-precision data.
func WithEpsilon(eps float64) Option {
	if numeric.IsNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	cmp := numeric.Tolerance(eps)

	return func(o *Options) { o.cmp = cmp }
}

// WithComparator injects a caller-supplied closeness predicate.
// Panics when c is nil.
func WithComparator(c numeric.Comparator) Option {
	if c == nil {
		panic(panicComparatorInvalid)
	}

	return func(o *Options) { o.cmp = c }
}

// Comparator returns the resolved comparator (never nil).
func (o Options) Comparator() numeric.Comparator { return o.cmp.OrDefault() }

// gatherOptions applies user setters in order over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{cmp: numeric.Default}
	for _, set := range user {
		set(&o)
	}

	return o
}
