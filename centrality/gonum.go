// SPDX-License-Identifier: MIT

// Package centrality: adapter from the core trade graph to gonum's graph
// stack. Traversal costs are reciprocal edge weights — trade volume is a
// flow, not a cost, so a heavier flow means a shorter hop. Zero-weight
// edges would cost +∞ and are simply not added.
package centrality

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/florianjehn/tradeshifts/core"
)

// reciprocalGraph converts g into a gonum weighted directed graph whose
// edge costs are 1/weight, together with the node ordering mapping gonum
// IDs back to countries (gonum node i ↔ order[i]).
// Complexity: O(V + E)
func reciprocalGraph(g *core.Graph) (*simple.WeightedDirectedGraph, []string) {
	order := g.Nodes()
	index := make(map[string]int64, len(order))
	dst := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i, id := range order {
		index[id] = int64(i)
		dst.AddNode(simple.Node(int64(i)))
	}
	for from, succ := range g.Edges() {
		for to, w := range succ {
			if w == 0 || from == to {
				continue // impassable or self-flow
			}
			dst.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(index[from]),
				T: simple.Node(index[to]),
				W: 1 / w,
			})
		}
	}

	return dst, order
}
