// SPDX-License-Identifier: MIT

// Package core defines the central Graph type for trade-flow networks and
// provides thread-safe primitives for building and querying them.
//
// A Graph is directed and weighted: a node is a country (string identifier)
// and an edge u→v carries the flow volume from exporter u to importer v.
// Weights are float64 tonnes/values; zero-weight edges are legal and denote
// a registered but empty flow (downstream traversal code treats them as
// impassable when costs are reciprocal weights).
//
// All mutating and reading APIs take a single sync.RWMutex internally, so
// graphs can be shared across goroutines (e.g. per-scenario analyses running
// in parallel) without external synchronization.
//
// Determinism: Nodes() returns identifiers in lexicographic order, and every
// derived ordering in this library is built from it, so repeated runs over
// the same inputs produce identical matrices and metric tables.
//
// Errors:
//
//	ErrEmptyCountryID - a country identifier is the empty string.
//	ErrBadWeight      - a negative edge weight was supplied.
//	ErrNodeNotFound   - an operation referenced a non-existent node.
package core
