// SPDX-License-Identifier: MIT

// Package community compares community structure across trade scenarios.
//
// It answers four questions about a country's neighbourhood:
//
//   - Reorder — present communities in a stable order across scenarios by
//     pinning anchor countries' communities to the front (display only, no
//     metric depends on it).
//   - Jaccard — how much of a country's baseline community survives into
//     another scenario (self excluded from both sets).
//   - WithinDegreeZScores / Participation — the Guimerà–Amaral role
//     coordinates: how connected a country is inside its own community, and
//     how evenly its links spread over all communities.
//   - Satisfaction — the share of a country's imports sourced from inside
//     its own community.
//
// Data-quality gaps (a country without a community) are skipped and
// surfaced as diag.Warnings, never hard failures.
package community
