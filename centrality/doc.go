// SPDX-License-Identifier: MIT

// Package centrality computes per-scenario node importance measures on
// trade graphs:
//
//   - Degree: weighted in/out-degree centrality — a country's share of the
//     graph's total directional flow.
//   - EntropicDegree: strength scaled by (1 + Shannon entropy) of the
//     node's local weight distribution, the attack-ranking signal used by
//     percolation analysis.
//   - Extrema: smallest/largest centrality values with their owning
//     countries, globally or restricted to one community.
//   - Betweenness: mean betweenness centrality under reciprocal-weight
//     traversal costs (large flows mean "close", not "far"; zero-weight
//     edges are impassable).
//   - Clustering: average clustering coefficient for directed weighted
//     graphs (Fagiolo's definition).
//   - Efficiency: the communications-efficiency of the flow network with
//     selectable normalisation (none/weak/strong).
//
// Shortest-path work is delegated to gonum's graph stack via a small
// adapter; the dense matrix work of clustering to gonum/mat.
//
// Errors (sentinel):
//
//	ErrBadNormalisation - unrecognized efficiency normalisation mode.
package centrality
