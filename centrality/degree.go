// SPDX-License-Identifier: MIT

// Package centrality: weighted degree and entropic degree.
package centrality

import (
	"math"

	"github.com/florianjehn/tradeshifts/core"
)

// Degree returns, per country, the sum of incident edge weights in the
// given direction divided by the graph's total weight in that direction.
// When the total weight is 0 every country scores 0 — an empty market is
// not an error.
// Complexity: O(V + E)
func Degree(g *core.Graph, dir core.Direction) map[string]float64 {
	nodes := g.Nodes()
	total := g.TotalWeight()
	values := make(map[string]float64, len(nodes))
	for _, id := range nodes {
		if total == 0 {
			values[id] = 0
			continue
		}
		values[id] = g.NodeWeight(id, dir) / total
	}

	return values
}

// EntropicDegree returns, per country, the strength in the given direction
// scaled by one plus the Shannon entropy (nats) of the node's local weight
// distribution: ED = (1 + H) · s. A node spreading its flow across many
// partners outranks one of equal volume with a single partner. Zero-strength
// nodes score 0.
// Complexity: O(V + E)
func EntropicDegree(g *core.Graph, dir core.Direction) map[string]float64 {
	nodes := g.Nodes()
	values := make(map[string]float64, len(nodes))
	for _, id := range nodes {
		var edges map[string]float64
		var err error
		if dir == core.Out {
			edges, err = g.OutEdges(id)
		} else {
			edges, err = g.InEdges(id)
		}
		if err != nil {
			values[id] = 0
			continue
		}
		strength := 0.0
		for _, w := range edges {
			strength += w
		}
		if strength == 0 {
			values[id] = 0
			continue
		}
		entropy := 0.0
		for _, w := range edges {
			if w > 0 {
				p := w / strength
				entropy -= p * math.Log(p)
			}
		}
		values[id] = (1 + entropy) * strength
	}

	return values
}
