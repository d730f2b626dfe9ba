// SPDX-License-Identifier: MIT

// Package percolation measures how many targeted country removals a trade
// network survives.
//
// The adjacency matrix is binarized (any flow counts as a link) and nodes
// are knocked out one by one in decreasing attack priority, recomputing the
// spectral radius of the remaining matrix after each removal. The critical
// threshold is the fraction of nodes removed when the radius first drops to
// 1 or below — the collapse point for percolation on directed networks.
//
// Deterministic attacks rank nodes by export or entropic out-degree
// centrality; random attacks draw independent uniform priorities per trial
// and aggregate thresholds with mean and standard error.
package percolation
