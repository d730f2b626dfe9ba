// SPDX-License-Identifier: MIT

// Package matrix: adjacency extraction and element-wise transforms.
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/florianjehn/tradeshifts/core"
)

// Adjacency returns the n×n weight matrix of g over the supplied node
// ordering: entry (i,j) is the edge weight order[i]→order[j], 0 when the
// edge is absent. Identifiers unknown to g simply produce zero rows and
// columns, which is exactly what alignment against a larger scenario needs.
// Complexity: O(n²)
func Adjacency(g *core.Graph, order []string) *mat.Dense {
	n := len(order)
	if n == 0 {
		return &mat.Dense{}
	}
	a := mat.NewDense(n, n, nil)
	for i, from := range order {
		for j, to := range order {
			if w, ok := g.Weight(from, to); ok {
				a.Set(i, j, w)
			}
		}
	}

	return a
}

// Binarize returns a copy of m with every non-zero entry replaced by 1.
// Percolation analysis works on flow presence, not volume.
// Complexity: O(r·c)
func Binarize(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	b := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				b.Set(i, j, 1)
			}
		}
	}

	return b
}

// RightStochastic returns a row-normalized copy of the non-negative square
// matrix m: every row sums to 1. Rows summing to 0 are left all-zero rather
// than divided, signalling an absorbing state to downstream consumers.
// Complexity: O(n²)
func RightStochastic(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	if r != c {
		return nil, ErrNotSquare
	}
	p := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		rowSum := 0.0
		for j := 0; j < c; j++ {
			rowSum += m.At(i, j)
		}
		if rowSum == 0 {
			continue // absorbing row stays all-zero
		}
		for j := 0; j < c; j++ {
			p.Set(i, j, m.At(i, j)/rowSum)
		}
	}

	return p, nil
}

// WalkMatrix returns the transition matrix of the random walk on g over the
// given node ordering. It is the right-stochastic adjacency with every
// absorbing row (a node without outgoing flow) replaced by a unit self-loop,
// so the walk — and therefore its stationary distribution — is always
// well-defined even on non-ergodic graphs such as chains of one-way flows.
// Complexity: O(n²)
func WalkMatrix(g *core.Graph, order []string) (*mat.Dense, error) {
	p, err := RightStochastic(Adjacency(g, order))
	if err != nil {
		return nil, err
	}
	n := len(order)
	for i := 0; i < n; i++ {
		rowSum := 0.0
		for j := 0; j < n; j++ {
			rowSum += p.At(i, j)
		}
		if rowSum == 0 {
			p.Set(i, i, 1)
		}
	}

	return p, nil
}
