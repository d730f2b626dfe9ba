// SPDX-License-Identifier: MIT

// Package core: Graph type, Direction, sentinel errors, constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCountryID indicates that a provided country identifier is empty.
	ErrEmptyCountryID = errors.New("core: country ID is empty")

	// ErrBadWeight indicates a negative weight was supplied for an edge.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Direction selects which incidence of an edge a metric considers.
type Direction int

const (
	// In considers incoming edges (imports of a country).
	In Direction = iota

	// Out considers outgoing edges (exports of a country).
	Out
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	if d == In {
		return "in"
	}

	return "out"
}

// Graph is the in-memory trade network: directed, weighted, loop-free by
// convention (self-flows are never added by the upstream model, but nothing
// here forbids them; analysis code excludes self-export explicitly).
//
// out[u][v] and in[v][u] always mirror each other.
type Graph struct {
	mu sync.RWMutex // guards nodes, out, in

	nodes map[string]struct{}           // node ID → presence
	out   map[string]map[string]float64 // from → to → weight
	in    map[string]map[string]float64 // to → from → weight
}

// NewGraph creates an empty trade Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		out:   make(map[string]map[string]float64),
		in:    make(map[string]map[string]float64),
	}
}
