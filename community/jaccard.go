// SPDX-License-Identifier: MIT

package community

import (
	"github.com/florianjehn/tradeshifts/diag"
	"github.com/florianjehn/tradeshifts/scenario"
)

// jaccard returns |a∩b| / |a∪b| over the two countries' community
// co-members, with the country itself removed from both sets first. Two
// empty sets score 0.
func jaccard(a, b scenario.Community, self string) float64 {
	inter, union := 0, 0
	for id := range a {
		if id == self {
			continue
		}
		union++
		if b.Has(id) {
			inter++
		}
	}
	for id := range b {
		if id == self || a.Has(id) {
			continue
		}
		union++
	}
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// JaccardDiff returns, per country of the base scenario, the Jaccard
// similarity between the country's community in base and its community in
// other (the country itself excluded from both sets). Countries lacking a
// community in either scenario are skipped with a warning — a data-quality
// signal, not a failure.
// Complexity: O(V · max community size)
func JaccardDiff(base, other *scenario.Scenario) (map[string]float64, diag.Warnings) {
	var warnings diag.Warnings
	out := make(map[string]float64, base.Graph.NodeCount())
	for _, id := range base.Graph.Nodes() {
		bi := base.Communities.Find(id)
		oi := other.Communities.Find(id)
		if bi < 0 || oi < 0 {
			warnings.Addf(id, "no community in %q, skipping similarity", pickLabel(base, other, bi))
			continue
		}
		out[id] = jaccard(base.Communities[bi], other.Communities[oi], id)
	}

	return out, warnings
}

// pickLabel names the scenario missing the community for the warning text.
func pickLabel(base, other *scenario.Scenario, baseIdx int) string {
	if baseIdx < 0 {
		return base.Label
	}

	return other.Label
}
