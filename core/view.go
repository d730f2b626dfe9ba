// SPDX-License-Identifier: MIT

// Package core: derived read-only views of a Graph (induced subgraphs and
// the undirected projection used by community-structure metrics).
package core

// Subgraph returns the subgraph induced by the given node set: the listed
// nodes that exist in g, plus every edge whose both endpoints are listed.
// Unknown identifiers are ignored, mirroring how cross-scenario alignment
// feeds intersections that may be stale for one side.
// Complexity: O(V + E)
func (g *Graph) Subgraph(nodes []string) *Graph {
	keep := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		keep[id] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	sub := NewGraph()
	for id := range keep {
		if _, ok := g.nodes[id]; ok {
			sub.addNodeLocked(id)
		}
	}
	for from, succ := range g.out {
		if _, ok := keep[from]; !ok {
			continue
		}
		for to, w := range succ {
			if _, ok := keep[to]; !ok {
				continue
			}
			sub.out[from][to] = w
			sub.in[to][from] = w
		}
	}

	return sub
}

// UndirectedNeighbors returns the set of nodes adjacent to id when edge
// direction is ignored. Self-loops are excluded. Unknown nodes yield an
// empty set.
// Complexity: O(deg(id))
func (g *Graph) UndirectedNeighbors(id string) map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set := make(map[string]struct{}, len(g.out[id])+len(g.in[id]))
	for to := range g.out[id] {
		if to != id {
			set[to] = struct{}{}
		}
	}
	for from := range g.in[id] {
		if from != id {
			set[from] = struct{}{}
		}
	}

	return set
}

// UndirectedDegree returns the number of distinct neighbors of id ignoring
// edge direction (the unweighted degree of the undirected projection).
// Complexity: O(deg(id))
func (g *Graph) UndirectedDegree(id string) int {
	return len(g.UndirectedNeighbors(id))
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cp := NewGraph()
	for id := range g.nodes {
		cp.addNodeLocked(id)
	}
	for from, succ := range g.out {
		for to, w := range succ {
			cp.out[from][to] = w
			cp.in[to][from] = w
		}
	}

	return cp
}
