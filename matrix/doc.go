// SPDX-License-Identifier: MIT

// Package matrix provides the graph-to-matrix algebra underlying every
// cross-scenario comparison: adjacency extraction over an explicit node
// ordering, right-stochastic (random-walk) matrices, stationary
// distributions, spectral radii and Markov entropy rates.
//
// All dense numerics are delegated to gonum/mat; this package owns the
// trade-network semantics on top of it.
//
// Determinism:
//   - Adjacency takes a caller-supplied node ordering and never invents one,
//     so aligned scenario pairs always produce shape- and order-compatible
//     matrices.
//   - Row/column index i always refers to order[i].
//
// Errors (sentinel):
//
//	ErrEmptyMatrix   - an operation received a 0×0 matrix or empty ordering.
//	ErrNotSquare     - a square-only operation received a rectangular matrix.
//	ErrNoStationary  - no eigenvalue within tolerance of 1 was found.
package matrix
