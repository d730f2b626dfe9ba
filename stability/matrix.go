// SPDX-License-Identifier: MIT

package stability

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/florianjehn/tradeshifts/scenario"
)

// DistanceMatrix is a symmetric pairwise geo-distance table over a fixed
// country set, resolved once so every scenario sees identical distances.
type DistanceMatrix struct {
	index map[string]int
	dist  *mat.SymDense
}

// BuildDistanceMatrix resolves all pairwise distances over the union of the
// scenarios' country sets. Any unresolvable country fails the build; callers
// then skip the stability analysis for the whole run.
// Complexity: O(V²) provider calls.
func BuildDistanceMatrix(scenarios []*scenario.Scenario, geo DistanceProvider) (*DistanceMatrix, error) {
	union := make(map[string]struct{})
	for _, s := range scenarios {
		for _, id := range s.Graph.Nodes() {
			union[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("stability: no countries to locate: %w", ErrUnknownCountry)
	}
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := geo.Distance(ids[i], ids[j])
			if err != nil {
				return nil, err
			}
			dist.SetSym(i, j, d)
		}
	}

	return &DistanceMatrix{index: index, dist: dist}, nil
}

// Between returns the resolved distance between two countries.
func (m *DistanceMatrix) Between(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCountry, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCountry, b)
	}

	return m.dist.At(i, j), nil
}
