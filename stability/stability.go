// SPDX-License-Identifier: MIT

package stability

import (
	"math"

	"github.com/florianjehn/tradeshifts/centrality"
	"github.com/florianjehn/tradeshifts/core"
	"github.com/florianjehn/tradeshifts/diag"
	"github.com/florianjehn/tradeshifts/scenario"
)

// NodeStability returns, per importer, the risk-and-proximity-weighted sum
// over its potential exporters: risk(e) · out_degree(e) · d(n,e)^(−gamma),
// counting only exporters with positive out-degree centrality and excluding
// self-export. Exporters without a risk score are skipped with a warning.
// With gamma = 0 distance drops out entirely.
// Complexity: O(V²)
func NodeStability(s *scenario.Scenario, risk RiskIndex, dm *DistanceMatrix, gamma float64) (map[string]float64, diag.Warnings) {
	var warnings diag.Warnings
	outDegree := centrality.Degree(s.Graph, core.Out)

	// Deterministic exporter order keeps the floating-point sums
	// reproducible across runs.
	exporters := make([]string, 0, len(outDegree))
	for _, id := range s.Graph.Nodes() {
		if outDegree[id] <= 0 {
			continue
		}
		if _, known := risk[id]; !known {
			warnings.Addf(id, "no risk score, excluded from stability")
			continue
		}
		exporters = append(exporters, id)
	}

	out := make(map[string]float64, s.Graph.NodeCount())
	for _, n := range s.Graph.Nodes() {
		sum := 0.0
		for _, e := range exporters {
			if e == n {
				continue
			}
			d, err := dm.Between(n, e)
			if err != nil {
				warnings.Addf(e, "unresolvable distance from %q, excluded", n)
				continue
			}
			sum += risk[e] * outDegree[e] * math.Pow(d, -gamma)
		}
		out[n] = sum
	}

	return out, warnings
}

// RelativeDiff returns, per country of other, the stability change relative
// to base: (other − base) / base. Countries absent from base or with zero
// base stability report NaN, the missing-value marker.
func RelativeDiff(base, other map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(other))
	for id, v := range other {
		b, ok := base[id]
		if !ok || b == 0 {
			out[id] = math.NaN()
			continue
		}
		out[id] = (v - b) / b
	}

	return out
}

// NetworkStability aggregates node stabilities into one scalar, weighting
// each importer by its in-degree centrality (relative import share).
func NetworkStability(s *scenario.Scenario, nodeStability map[string]float64) float64 {
	inDegree := centrality.Degree(s.Graph, core.In)
	total := 0.0
	for id, stab := range nodeStability {
		total += inDegree[id] * stab
	}

	return total
}
