// SPDX-License-Identifier: MIT

// Package matrix: eigen-based tools — stationary distributions of random
// walks and spectral radii of (perturbed) adjacency matrices.
package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Stationary returns the stationary probability vector π of the
// right-stochastic matrix p, i.e. the normalized left eigenvector for
// eigenvalue 1 (π·p = π, Σπ = 1, π ≥ 0).
//
// Implementation: right eigen-decomposition of pᵀ; the eigenvector paired
// with the eigenvalue closest to 1 (within UnitEigenTol) is taken, its real
// parts are rectified and normalized to a probability vector.
//
// Errors: ErrEmptyMatrix for a 0×0 input, ErrNotSquare for rectangular
// input, ErrEigenFailed when the decomposition does not converge, and
// ErrNoStationary when no eigenvalue is within tolerance of 1 or the
// candidate vector degenerates to zero mass.
// Complexity: O(n³)
func Stationary(p mat.Matrix) ([]float64, error) {
	r, c := p.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	if r != c {
		return nil, ErrNotSquare
	}

	// π p = π  ⇔  pᵀ πᵀ = πᵀ: solve as a right eigenproblem on pᵀ.
	var pt mat.Dense
	pt.CloneFrom(p.T())

	var eig mat.Eigen
	if ok := eig.Factorize(&pt, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}
	values := eig.Values(nil)

	best, bestDist := -1, math.Inf(1)
	for i, v := range values {
		if d := cmplx.Abs(v - 1); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > UnitEigenTol {
		return nil, ErrNoStationary
	}

	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	pi := make([]float64, r)
	mass := 0.0
	for i := 0; i < r; i++ {
		// The unit eigenvector of a non-negative matrix is real up to a
		// global complex phase; rectifying the real parts recovers it.
		pi[i] = math.Abs(real(vecs.At(i, best)))
		mass += pi[i]
	}
	if mass == 0 {
		return nil, ErrNoStationary
	}
	for i := range pi {
		pi[i] /= mass
	}

	return pi, nil
}

// SpectralRadius returns the largest eigenvalue magnitude of the square
// matrix m. A 0×0 matrix has spectral radius 0 (a fully removed network).
// Complexity: O(n³)
func SpectralRadius(m mat.Matrix) (float64, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0, nil
	}
	if r != c {
		return 0, ErrNotSquare
	}

	var dense mat.Dense
	dense.CloneFrom(m)

	var eig mat.Eigen
	if ok := eig.Factorize(&dense, mat.EigenNone); !ok {
		return 0, ErrEigenFailed
	}

	radius := 0.0
	for _, v := range eig.Values(nil) {
		if a := cmplx.Abs(v); a > radius {
			radius = a
		}
	}

	return radius, nil
}
