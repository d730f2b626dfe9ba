// SPDX-License-Identifier: MIT

// Package matrix: Markov entropy rate of a trade graph.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/florianjehn/tradeshifts/core"
)

// EntropyRate computes the entropy rate of the weighted graph treated as a
// Markov random walk: h = Σᵢ πᵢ · H(row i), where the transition matrix is
// the walk matrix over the graph's own (full) node set and H is the Shannon
// entropy (natural log) of a row.
//
// Absorbing nodes become deterministic self-loop states (see WalkMatrix)
// and contribute zero entropy.
// Errors propagate from WalkMatrix and Stationary.
// Complexity: O(n³) — dominated by the stationary solve.
func EntropyRate(g *core.Graph) (float64, error) {
	order := g.Nodes()
	if len(order) == 0 {
		return 0, ErrEmptyMatrix
	}

	p, err := WalkMatrix(g, order)
	if err != nil {
		return 0, err
	}
	pi, err := Stationary(p)
	if err != nil {
		return 0, err
	}

	rate := 0.0
	for i := range order {
		rate += pi[i] * rowEntropy(p, i)
	}

	return rate, nil
}

// rowEntropy returns the Shannon entropy (nats) of row i of p.
func rowEntropy(p *mat.Dense, i int) float64 {
	_, c := p.Dims()
	h := 0.0
	for j := 0; j < c; j++ {
		if v := p.At(i, j); v > 0 {
			h -= v * math.Log(v)
		}
	}

	return h
}
