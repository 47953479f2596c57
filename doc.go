// Package mat3 is a closed-form linear-algebra toolkit for fixed-size 3×3
// matrices and 3-vectors, built around an analytic eigen-solver for symmetric
// matrices.
//
// 🚀 What is mat3?
//
//	A small, allocation-free, zero-runtime-dependency library that brings together:
//		• Value types: Matrix[T] and Vector[T], generic over int and float elements
//		• Arithmetic: determinant, adjugate/inverse, transpose, cyclic rotation,
//		  products, scaling, aᵗa, squared norms under a metric, approximate equality
//		• Spectra: eigenvalues by Cardano's method, eigenvectors by cofactor
//		  elimination, full orthonormal decomposition with repeated roots
//
// ✨ Why choose mat3?
//
//   - Constant cost: no iteration, no convergence thresholds, no allocation
//   - Reproducible: bit-identical output for bit-identical input
//   - Explicit numeric policy: one injectable comparator shared by every
//     tolerance decision
//   - Safe for concurrent use: pure functions over value types
//
// Under the hood, everything is organized under three subpackages:
//
//	numeric/ — the shared floating-point comparator and finiteness helpers
//	matrix/  — Matrix/Vector types and the arithmetic primitives
//	eigen/   — Eigenvalues, Eigenvector, Decompose
//
// Quick example:
//
//	d := matrix.Symmetric(2.0, 2, 3, 1, 0, 0) // [[2 1 0] [1 2 0] [0 0 3]]
//	dec, err := eigen.Decompose(d)            // λ = 1, 3, 3
//
//	go get github.com/katalvlaran/mat3
package mat3
