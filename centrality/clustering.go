// SPDX-License-Identifier: MIT

// Package centrality: directed weighted clustering after Fagiolo (2007).
package centrality

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/florianjehn/tradeshifts/core"
)

// Clustering returns the average directed weighted clustering coefficient of
// the graph. Per node, triangles through it are counted on the cube of the
// symmetrized weight matrix Ŵ+Ŵᵀ, where Ŵ holds cube roots of weights
// rescaled by the largest weight, and divided by the number of triangles the
// node's degrees admit: 2·[d_tot(d_tot−1) − 2·d_bidir]. Nodes admitting no
// triangle score 0, self-flows are ignored, and the empty graph scores 0.
// Complexity: O(V³) — dense matrix cube.
func Clustering(g *core.Graph) float64 {
	order := g.Nodes()
	n := len(order)
	if n == 0 {
		return 0
	}

	index := make(map[string]int, n)
	for i, id := range order {
		index[id] = i
	}

	// Largest off-diagonal weight sets the rescaling; all-zero graphs have
	// no triangles at all.
	maxW := 0.0
	edges := g.Edges()
	for from, succ := range edges {
		for to, w := range succ {
			if from != to && w > maxW {
				maxW = w
			}
		}
	}
	if maxW == 0 {
		return 0
	}

	hat := mat.NewDense(n, n, nil)
	adj := mat.NewDense(n, n, nil)
	for from, succ := range edges {
		for to, w := range succ {
			if from == to || w == 0 {
				continue
			}
			i, j := index[from], index[to]
			hat.Set(i, j, math.Cbrt(w/maxW))
			adj.Set(i, j, 1)
		}
	}

	var sym mat.Dense
	sym.Add(hat, hat.T())
	var sq, cube mat.Dense
	sq.Mul(&sym, &sym)
	cube.Mul(&sq, &sym)

	sum := 0.0
	for i := 0; i < n; i++ {
		dTot, dBidir := 0.0, 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			out, in := adj.At(i, j), adj.At(j, i)
			dTot += out + in
			if out > 0 && in > 0 {
				dBidir++
			}
		}
		denom := 2 * (dTot*(dTot-1) - 2*dBidir)
		if denom > 0 {
			sum += cube.At(i, i) / denom
		}
	}

	return sum / float64(n)
}
