// SPDX-License-Identifier: MIT

// Package scenario: Scenario, Community and Partition types.
package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/florianjehn/tradeshifts/core"
)

// Sentinel errors for scenario construction and flow-table access.
var (
	// ErrNilGraph indicates a Scenario was built without a trade graph.
	ErrNilGraph = errors.New("scenario: trade graph is nil")

	// ErrBadPartition indicates the community partition overlaps or does not
	// cover the graph's node set.
	ErrBadPartition = errors.New("scenario: communities are not a partition of the graph nodes")

	// ErrShape indicates a flow-table access referenced an unknown country.
	ErrShape = errors.New("scenario: country not present in flow table")
)

// Community is a disjoint set of country identifiers treated as one
// cohesive sub-network.
type Community map[string]struct{}

// NewCommunity builds a Community from the given identifiers.
func NewCommunity(ids ...string) Community {
	c := make(Community, len(ids))
	for _, id := range ids {
		c[id] = struct{}{}
	}

	return c
}

// Has reports whether the country belongs to the community.
func (c Community) Has(id string) bool {
	_, ok := c[id]

	return ok
}

// Members returns the community's countries in lexicographic order.
func (c Community) Members() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Partition is an ordered sequence of disjoint communities covering a
// graph's node set. Order matters only for display (community colouring);
// no numeric metric depends on it.
type Partition []Community

// Find returns the index of the community containing id, or -1.
// Complexity: O(|partition|) map lookups.
func (p Partition) Find(id string) int {
	for i, c := range p {
		if c.Has(id) {
			return i
		}
	}

	return -1
}

// Scenario is one hypothetical disruption state: a finished trade network
// plus its community partition, as produced by the upstream trade model.
// Metadata fields are display-only and never enter any computation.
type Scenario struct {
	// Label names the scenario (e.g. "ISO3 Wheat - Nuclear Winter Y1").
	Label string

	// Commodity is the traded good the network describes.
	Commodity string

	// BaseYear is the reference year of the underlying trade data.
	BaseYear string

	// Graph is the weighted directed trade network (exporter→importer).
	Graph *core.Graph

	// Trade is the importer×exporter flow table consistent with Graph.
	// Optional: import totals fall back to graph in-weights when nil.
	Trade *FlowTable

	// Communities is the ordered community partition of Graph's nodes.
	Communities Partition
}

// New validates and assembles a Scenario. The partition must be disjoint
// and cover exactly the graph's node set; Trade may be nil.
func New(label string, g *core.Graph, trade *FlowTable, communities Partition) (*Scenario, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := validatePartition(g, communities); err != nil {
		return nil, err
	}

	return &Scenario{Label: label, Graph: g, Trade: trade, Communities: communities}, nil
}

// validatePartition checks the no-overlap and full-coverage invariants.
func validatePartition(g *core.Graph, p Partition) error {
	seen := make(map[string]int)
	for i, c := range p {
		for id := range c {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%w: %q in communities %d and %d", ErrBadPartition, id, prev, i)
			}
			seen[id] = i
			if !g.HasNode(id) {
				return fmt.Errorf("%w: %q is not a graph node", ErrBadPartition, id)
			}
		}
	}
	for _, id := range g.Nodes() {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: node %q has no community", ErrBadPartition, id)
		}
	}

	return nil
}

// Imports returns each country's total import volume: the row sums of the
// flow table when present, otherwise the graph's in-weights.
// Complexity: O(V·E) worst case, O(table) with a flow table.
func (s *Scenario) Imports() map[string]float64 {
	if s.Trade != nil {
		return s.Trade.RowSums()
	}
	imports := make(map[string]float64, s.Graph.NodeCount())
	for _, id := range s.Graph.Nodes() {
		imports[id] = s.Graph.NodeWeight(id, core.In)
	}

	return imports
}
