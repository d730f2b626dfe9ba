// SPDX-License-Identifier: MIT

package postprocess

import (
	"github.com/florianjehn/tradeshifts/centrality"
	"github.com/florianjehn/tradeshifts/diag"
	"github.com/florianjehn/tradeshifts/distance"
	"github.com/florianjehn/tradeshifts/percolation"
	"github.com/florianjehn/tradeshifts/scenario"
)

// DegreeExtrema pairs the in- and out-degree extremes of one scenario.
type DegreeExtrema struct {
	In  centrality.Extrema
	Out centrality.Extrema
}

// CommunityExtrema lists per-community degree extremes, ordered like the
// scenario's (reordered) partition.
type CommunityExtrema struct {
	In  []centrality.Extrema
	Out []centrality.Extrema
}

// AttackSummary bundles one scenario's percolation runs. Order maps matrix
// indices in the Result removal sequences back to country identifiers.
type AttackSummary struct {
	Order    []string
	Export   percolation.Result
	Entropic percolation.Result
	Random   percolation.RandomResult
}

// Results is the full output of one analysis run.
//
// Slices documented "per scenario" have one entry per scenario, index 0 the
// base. Slices documented "per comparison" have one entry per non-base
// scenario, ordered like the engine's comparison list; entry i compares
// comparison scenario i against the base.
type Results struct {
	// Labels names every scenario, index 0 the base.
	Labels []string

	// Communities holds each scenario's partition after anchor reordering
	// (per scenario). Membership is identical to the input partitions.
	Communities []scenario.Partition

	// AlignedNodes is the sorted node intersection with the base (per
	// comparison).
	AlignedNodes [][]string

	// Imports is each country's total import volume (per scenario).
	Imports []map[string]float64

	// ImportsAbsDiff and ImportsRelDiff compare each comparison scenario's
	// countries' imports against the base (per comparison). Countries the
	// base does not trade hold NaN and raise a warning. The relative form
	// is a percentage, 0 where the base imports nothing.
	ImportsAbsDiff []map[string]float64
	ImportsRelDiff []map[string]float64

	// Distances is the graph-distance table (per comparison).
	Distances []distance.Row

	// InDegree, OutDegree and EntropicOutDegree are centrality mappings
	// (per scenario).
	InDegree          []map[string]float64
	OutDegree         []map[string]float64
	EntropicOutDegree []map[string]float64

	// GlobalExtrema and PerCommunityExtrema locate degree extremes (per
	// scenario).
	GlobalExtrema       []DegreeExtrema
	PerCommunityExtrema []CommunityExtrema

	// Betweenness, Clustering and Efficiency are network scalars (per
	// scenario).
	Betweenness []float64
	Clustering  []float64
	Efficiency  []float64

	// Jaccard is per-country community similarity vs the base (per
	// comparison).
	Jaccard []map[string]float64

	// ZScores and Participation are the community role coordinates (per
	// scenario).
	ZScores       []map[string]float64
	Participation []map[string]float64

	// Satisfaction is the within-community import share (per scenario);
	// SatisfactionDiff its plain change vs the base (per comparison), NaN
	// plus a warning for countries absent from the base.
	Satisfaction     []map[string]float64
	SatisfactionDiff []map[string]float64

	// NodeStability (per scenario), StabilityDiff (per comparison) and
	// NetworkStability (per scenario) are nil when risk or geography inputs
	// are missing or unresolvable — stability is then unavailable, not an
	// error.
	NodeStability    []map[string]float64
	StabilityDiff    []map[string]float64
	NetworkStability []float64

	// Percolation holds the attack analyses (per scenario).
	Percolation []AttackSummary

	// Warnings is the accumulated data-quality trail of the whole run.
	Warnings diag.Warnings
}
