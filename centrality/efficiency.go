// SPDX-License-Identifier: MIT

// Package centrality: communications-efficiency of a flow network.
package centrality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"

	"github.com/florianjehn/tradeshifts/core"
)

// ErrBadNormalisation indicates an unrecognized efficiency normalisation mode.
var ErrBadNormalisation = errors.New("centrality: unknown efficiency normalisation")

// Normalisation selects the denominator of the efficiency score.
type Normalisation int

const (
	// NormNone reports the raw efficiency sum.
	NormNone Normalisation = iota

	// NormWeak divides by the mean of the actual and ideal-flow efficiencies.
	NormWeak

	// NormStrong divides by the ideal-flow efficiency.
	NormStrong
)

// String returns the lowercase mode name.
func (n Normalisation) String() string {
	switch n {
	case NormNone:
		return "none"
	case NormWeak:
		return "weak"
	case NormStrong:
		return "strong"
	default:
		return fmt.Sprintf("normalisation(%d)", int(n))
	}
}

// Valid reports whether n is one of the recognized modes.
func (n Normalisation) Valid() bool {
	return n == NormNone || n == NormWeak || n == NormStrong
}

// Efficiency computes the communications-efficiency of the weighted flow
// graph: E = Σ_{i≠j} 1/d(i,j), with d the shortest-path cost under
// reciprocal weights (so a pair directly linked by weight w contributes at
// least w, and better intermediated routes raise that).
//
// The ideal-flow reference spreads the graph's total flow W uniformly over
// all n(n−1) ordered pairs; its efficiency sum is exactly W. NormStrong
// divides by W, NormWeak by (E+W)/2, NormNone reports E raw. A zero-valued
// denominator (empty market) yields 0.
//
// Returns ErrBadNormalisation for unknown modes.
// Complexity: O(V·E + V² log V)
func Efficiency(g *core.Graph, norm Normalisation) (float64, error) {
	if !norm.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrBadNormalisation, int(norm))
	}

	wg, order := reciprocalGraph(g)
	n := len(order)
	if n < 2 {
		return 0, nil
	}

	shortest := path.DijkstraAllPaths(wg)
	actual := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := shortest.Weight(int64(i), int64(j))
			if d > 0 && !math.IsInf(d, 1) {
				actual += 1 / d
			}
		}
	}

	ideal := g.TotalWeight()
	switch norm {
	case NormWeak:
		if mean := (actual + ideal) / 2; mean > 0 {
			return actual / mean, nil
		}

		return 0, nil
	case NormStrong:
		if ideal > 0 {
			return actual / ideal, nil
		}

		return 0, nil
	default:
		return actual, nil
	}
}
