// SPDX-License-Identifier: MIT

package community

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/florianjehn/tradeshifts/scenario"
)

// WithinDegreeZScores returns, per country, the z-score of its undirected
// degree inside the subgraph induced by its own community. Degrees are
// normalized per community (population mean 0, unit variance over that
// community's members). A community whose members all have the same
// within-degree has no variance; its members score NaN, the missing-value
// marker downstream.
// Complexity: O(V + E)
func WithinDegreeZScores(s *scenario.Scenario) map[string]float64 {
	out := make(map[string]float64, s.Graph.NodeCount())
	for _, c := range s.Communities {
		members := c.Members()
		sub := s.Graph.Subgraph(members)
		degrees := make([]float64, len(members))
		for i, id := range members {
			degrees[i] = float64(sub.UndirectedDegree(id))
		}
		mean := stat.Mean(degrees, nil)
		std := stat.PopStdDev(degrees, nil)
		for i, id := range members {
			if std == 0 {
				out[id] = math.NaN()
				continue
			}
			out[id] = (degrees[i] - mean) / std
		}
	}

	return out
}

// Participation returns, per country, the participation coefficient
// P = 1 − Σ_s (k_s/k)², where k is the country's total undirected degree
// and k_s its link count into community s (its own included). Isolated
// countries (k = 0) score 0 by convention. P is 0 when every link stays in
// one community and approaches 1 as links spread evenly over all of them.
// Complexity: O(V + E)
func Participation(s *scenario.Scenario) map[string]float64 {
	out := make(map[string]float64, s.Graph.NodeCount())
	for _, id := range s.Graph.Nodes() {
		neighbors := s.Graph.UndirectedNeighbors(id)
		k := float64(len(neighbors))
		if k == 0 {
			out[id] = 0
			continue
		}
		perCommunity := make(map[int]float64, len(s.Communities))
		for n := range neighbors {
			perCommunity[s.Communities.Find(n)]++
		}
		sum := 0.0
		for _, ks := range perCommunity {
			sum += ks * ks
		}
		out[id] = 1 - sum/(k*k)
	}

	return out
}
