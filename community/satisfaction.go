// SPDX-License-Identifier: MIT

package community

import (
	"math"

	"github.com/florianjehn/tradeshifts/diag"
	"github.com/florianjehn/tradeshifts/scenario"
)

// Satisfaction returns, per country, the share of its import volume sourced
// from inside its own community. Countries importing nothing score 0;
// countries without a community are absent from the result.
// Complexity: O(V + E)
func Satisfaction(s *scenario.Scenario) map[string]float64 {
	out := make(map[string]float64, s.Graph.NodeCount())
	for _, id := range s.Graph.Nodes() {
		ci := s.Communities.Find(id)
		if ci < 0 {
			continue
		}
		own := s.Communities[ci]
		in, err := s.Graph.InEdges(id)
		if err != nil {
			continue
		}
		total, within := 0.0, 0.0
		for from, w := range in {
			total += w
			if own.Has(from) {
				within += w
			}
		}
		if total == 0 {
			out[id] = 0
			continue
		}
		out[id] = within / total
	}

	return out
}

// SatisfactionDiff returns, per country of other, the change in community
// satisfaction against the base: other − base. Countries absent from the
// base report NaN with a warning — a data-quality signal, not a failure.
func SatisfactionDiff(base, other map[string]float64) (map[string]float64, diag.Warnings) {
	var warnings diag.Warnings
	out := make(map[string]float64, len(other))
	for id, v := range other {
		b, ok := base[id]
		if !ok {
			warnings.Addf(id, "not in the base scenario, no satisfaction change")
			out[id] = math.NaN()
			continue
		}
		out[id] = v - b
	}

	return out, warnings
}
