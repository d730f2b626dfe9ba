// Package tradeshifts is an in-memory analysis engine for comparing
// weighted directed trade-flow networks ("scenarios") — from graph
// primitives to percolation-based attack resilience.
//
// 🚀 What is tradeshifts?
//
//	A batch analysis library that brings together:
//		• Core primitives: directed weighted country graphs, safe under locks
//		• Matrix views: adjacency extraction, stochastic rows, spectral tools
//		• Distance metrics: Frobenius, Markov (stationary-walk), entropy rate
//		• Centrality: weighted degree, entropic degree, betweenness, clustering
//		• Community comparison: Jaccard similarity, z-scores, participation
//		• Stability: geo-decayed, risk-weighted node and network stability
//		• Percolation: export / entropic / random attack thresholds
//
// The engine takes one designated base scenario plus an ordered list of
// comparison scenarios; every distance and difference metric is computed
// relative to the base. Scenario
// construction (the upstream trade model) and all rendering/reporting are
// external collaborators: this library consumes finished graphs and
// community partitions and produces plain numeric results.
//
// Under the hood, everything is organized per concern:
//
//	core/        — fundamental Graph type and thread-safe primitives
//	matrix/      — graph↔matrix algebra (gonum-backed)
//	scenario/    — Scenario values, flow tables, cross-scenario alignment
//	diag/        — accumulated data-quality warnings
//	distance/    — graph distance metrics against the base scenario
//	centrality/  — degree, entropic, betweenness, clustering, efficiency
//	community/   — partition reordering and community-structure comparison
//	stability/   — risk indices, geo distances, stability scores
//	percolation/ — attack-vulnerability thresholds
//	postprocess/ — the orchestrator running the full pipeline
//
//	go get github.com/florianjehn/tradeshifts
package tradeshifts
