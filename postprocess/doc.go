// SPDX-License-Identifier: MIT

// Package postprocess runs the full comparative analysis over a base trade
// scenario and its disruption scenarios.
//
// The Engine owns the scenario list and executes every analysis in a fixed
// dependency order: node alignment, import volumes, graph distances,
// centrality, community comparison, efficiency, supply stability and attack
// percolation. Results come back as plain per-scenario tables and mappings
// for an external reporting layer to render; the engine itself never writes
// files or draws anything.
//
// Construction validates all configuration up front — decay exponent,
// efficiency normalisation, random-attack sample size, community anchors —
// so a Run can only fail on numerical degeneracies, never on bad settings.
// Data-quality gaps (missing risk scores, missing communities) downgrade to
// warnings collected on the result and mirrored to the logger.
package postprocess
