// SPDX-License-Identifier: MIT

// Package centrality: betweenness centrality under reciprocal-weight costs.
package centrality

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"

	"github.com/florianjehn/tradeshifts/core"
)

// Betweenness returns the mean betweenness centrality across all countries,
// computed on the directed graph with reciprocal edge weights as traversal
// costs. Scores are normalized by (n−1)(n−2), the number of ordered pairs a
// node can mediate in a directed graph, so values are comparable across
// scenarios of different size. Graphs with fewer than three nodes have no
// mediated pairs and score 0.
// Complexity: O(V·E + V² log V) — all-pairs Dijkstra.
func Betweenness(g *core.Graph) float64 {
	wg, order := reciprocalGraph(g)
	n := len(order)
	if n < 3 {
		return 0
	}

	scores := network.BetweennessWeighted(wg, path.DijkstraAllPaths(wg))

	norm := float64(n-1) * float64(n-2)
	sum := 0.0
	for i := 0; i < n; i++ {
		// Countries mediating no path are absent from the score map and
		// contribute 0.
		sum += scores[int64(i)] / norm
	}

	return sum / float64(n)
}
