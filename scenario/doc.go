// SPDX-License-Identifier: MIT

// Package scenario defines the Scenario value consumed by every analysis
// engine: one weighted directed trade graph, its importer×exporter flow
// table, an ordered community partition, and display metadata.
//
// Scenarios are immutable inputs. The one sanctioned "mutation" — reordering
// the community partition for display consistency — is expressed elsewhere
// as a pure function returning a new partition (see package community);
// nothing in this package or its consumers alters membership.
//
// The package also hosts the cross-scenario alignment resolver: Aligned
// returns the lexicographically sorted intersection of two scenarios' node
// sets, the only node ordering shape-sensitive comparisons may use.
//
// Errors:
//
//	ErrNilGraph     - a Scenario was built without a graph.
//	ErrBadPartition - communities overlap or fail to cover the graph nodes.
//	ErrShape        - a flow table lookup or write is out of range.
package scenario
