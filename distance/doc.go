// SPDX-License-Identifier: MIT

// Package distance measures how far a trade scenario has drifted from its
// baseline.
//
// Three complementary views:
//
//   - Frobenius — element-wise L2 norm of the adjacency difference over the
//     aligned node set; raw volume shifts.
//   - Markov — Euclidean distance between the stationary distributions of
//     the random walks on the aligned subgraphs; structural shifts of where
//     flow settles.
//   - Entropy rate — signed difference of the scenarios' full-graph walk
//     entropy rates; diversification shifts.
//
// Compare packages everything into a table row per scenario, keyed by the
// scenario label.
package distance
