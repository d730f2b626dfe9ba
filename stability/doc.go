// SPDX-License-Identifier: MIT

// Package stability scores how securely each importer is supplied.
//
// A country's supply is stable when its exporters are politically stable
// (external risk index), export a lot (out-degree centrality) and sit close
// by (geo-distance decayed by a tunable exponent gamma):
//
//	stability(n) = Σ_e risk(e) · out_degree(e) · distance(n,e)^(−gamma)
//
// summed over exporters e ≠ n with positive out-degree. Network-level
// stability weights each importer's score by its import share.
//
// The geo-distance matrix is built once over the union of all scenarios'
// countries; when it cannot be built the whole stability analysis is
// reported unavailable rather than failing the run. Exporters without a
// known risk score are skipped with a warning.
package stability
