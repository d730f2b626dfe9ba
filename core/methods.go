// SPDX-License-Identifier: MIT

// Package core: mutating and querying methods of Graph.
package core

import (
	"fmt"
	"sort"
)

// AddNode registers a country identifier. Adding an existing node is a no-op.
// Returns ErrEmptyCountryID for the empty string.
// Complexity: O(1)
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyCountryID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)

	return nil
}

// addNodeLocked inserts id into all node-indexed maps. Caller holds g.mu.
func (g *Graph) addNodeLocked(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.out[id] = make(map[string]float64)
	g.in[id] = make(map[string]float64)
}

// SetEdge sets the flow volume from → to, implicitly registering both
// endpoints. An existing edge is overwritten. Zero weights are allowed;
// negative weights fail with ErrBadWeight.
// Complexity: O(1)
func (g *Graph) SetEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyCountryID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%g", ErrBadWeight, from, to, weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(from)
	g.addNodeLocked(to)
	g.out[from][to] = weight
	g.in[to][from] = weight

	return nil
}

// HasNode reports whether the country is present in the graph.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Weight returns the flow volume from → to and whether the edge exists.
// Complexity: O(1)
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.out[from][to]

	return w, ok
}

// Nodes returns all country identifiers in lexicographic order.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges (zero-weight included).
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, succ := range g.out {
		n += len(succ)
	}

	return n
}

// Edges returns a copy of every directed edge keyed by source then
// destination. The copy is independent of the graph.
// Complexity: O(V + E)
func (g *Graph) Edges() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make(map[string]map[string]float64, len(g.out))
	for from, succ := range g.out {
		cp := make(map[string]float64, len(succ))
		for to, w := range succ {
			cp[to] = w
		}
		edges[from] = cp
	}

	return edges
}

// OutEdges returns a copy of the outgoing edge map of id (destination →
// weight). Returns ErrNodeNotFound for unknown nodes.
// Complexity: O(deg(id))
func (g *Graph) OutEdges(id string) (map[string]float64, error) {
	return g.incident(id, Out)
}

// InEdges returns a copy of the incoming edge map of id (source → weight).
// Returns ErrNodeNotFound for unknown nodes.
// Complexity: O(deg(id))
func (g *Graph) InEdges(id string) (map[string]float64, error) {
	return g.incident(id, In)
}

// incident copies the edge map of id in the requested direction.
func (g *Graph) incident(id string, dir Direction) (map[string]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	src := g.out[id]
	if dir == In {
		src = g.in[id]
	}
	cp := make(map[string]float64, len(src))
	for other, w := range src {
		cp[other] = w
	}

	return cp, nil
}

// NodeWeight returns the summed edge weight incident to id in the given
// direction (the country's total import or export volume). Unknown nodes
// yield 0; the partition invariants upstream make that unreachable in
// practice, and a sum is the natural zero value.
// Complexity: O(deg(id))
func (g *Graph) NodeWeight(id string, dir Direction) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.out[id]
	if dir == In {
		src = g.in[id]
	}
	total := 0.0
	for _, w := range src {
		total += w
	}

	return total
}

// TotalWeight returns the sum of all edge weights in the graph. The in- and
// out-direction totals are identical by construction.
// Complexity: O(V + E)
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0.0
	for _, succ := range g.out {
		for _, w := range succ {
			total += w
		}
	}

	return total
}
