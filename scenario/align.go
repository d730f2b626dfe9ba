// SPDX-License-Identifier: MIT

// Package scenario: cross-scenario node alignment.
package scenario

import "sort"

// Aligned returns the set of countries common to both scenarios' graphs,
// sorted lexicographically. Every shape-sensitive comparison (matrix
// distances, stationary-vector distances) must derive its node ordering
// from this list and nothing else, so results are reproducible across runs
// and comparable across scenarios.
// Complexity: O(V log V)
func Aligned(base, other *Scenario) []string {
	baseNodes := make(map[string]struct{})
	for _, id := range base.Graph.Nodes() {
		baseNodes[id] = struct{}{}
	}
	var common []string
	for _, id := range other.Graph.Nodes() {
		if _, ok := baseNodes[id]; ok {
			common = append(common, id)
		}
	}
	sort.Strings(common)

	return common
}
