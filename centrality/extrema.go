// SPDX-License-Identifier: MIT

// Package centrality: smallest/largest value extraction for metric maps.
package centrality

import (
	"math"

	"github.com/florianjehn/tradeshifts/scenario"
)

// Extremum is one end of a metric's range together with its owner.
type Extremum struct {
	Country string
	Value   float64
}

// Extrema holds both ends of a metric's range.
type Extrema struct {
	Min Extremum
	Max Extremum
}

// FindExtrema returns the smallest and largest value in the metric map with
// their owning countries. Ties break towards the lexicographically smaller
// country so results are reproducible. An empty map yields NaN extrema with
// empty owners.
// Complexity: O(V)
func FindExtrema(values map[string]float64) Extrema {
	ex := Extrema{
		Min: Extremum{Value: math.NaN()},
		Max: Extremum{Value: math.NaN()},
	}
	for id, v := range values {
		if ex.Min.Country == "" && math.IsNaN(ex.Min.Value) {
			ex.Min = Extremum{Country: id, Value: v}
			ex.Max = Extremum{Country: id, Value: v}
			continue
		}
		if v < ex.Min.Value || (v == ex.Min.Value && id < ex.Min.Country) {
			ex.Min = Extremum{Country: id, Value: v}
		}
		if v > ex.Max.Value || (v == ex.Max.Value && id < ex.Max.Country) {
			ex.Max = Extremum{Country: id, Value: v}
		}
	}

	return ex
}

// CommunityExtrema returns, per community of the partition, the extrema of
// the metric restricted to that community's members. Members missing from
// the metric map are skipped.
// Complexity: O(V)
func CommunityExtrema(values map[string]float64, parts scenario.Partition) []Extrema {
	out := make([]Extrema, len(parts))
	for i, community := range parts {
		local := make(map[string]float64, len(community))
		for id := range community {
			if v, ok := values[id]; ok {
				local[id] = v
			}
		}
		out[i] = FindExtrema(local)
	}

	return out
}
