// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors and numeric tolerances.
package matrix

import "errors"

// Sentinel errors returned by the matrix algebra.
var (
	// ErrEmptyMatrix indicates a 0×0 matrix or an empty node ordering.
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrNotSquare indicates a square-only operation received a rectangular matrix.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNoStationary indicates that no eigenvalue lies within UnitEigenTol
	// of 1, so the chain has no detectable stationary distribution.
	ErrNoStationary = errors.New("matrix: no eigenvalue within tolerance of 1")

	// ErrEigenFailed indicates the underlying eigen-decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen-decomposition failed")
)

// UnitEigenTol is the absolute tolerance used when locating the unit
// eigenvalue of a stochastic matrix. Row-stochastic matrices carry an exact
// unit eigenvalue; the tolerance absorbs floating-point drift only.
const UnitEigenTol = 1e-8
