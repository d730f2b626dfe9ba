// SPDX-License-Identifier: MIT

package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianjehn/tradeshifts/core"
	"github.com/florianjehn/tradeshifts/distance"
	"github.com/florianjehn/tradeshifts/scenario"
)

// buildScenario assembles a one-community scenario over the given flows.
func buildScenario(t *testing.T, label string, flows map[[2]string]float64) *scenario.Scenario {
	t.Helper()
	g := core.NewGraph()
	for pair, w := range flows {
		require.NoError(t, g.SetEdge(pair[0], pair[1], w))
	}
	s, err := scenario.New(label, g, nil, scenario.Partition{
		scenario.NewCommunity(g.Nodes()...),
	})
	require.NoError(t, err)
	return s
}

// ---------------------------------------------------------------------------
// 1. Self-comparison
// ---------------------------------------------------------------------------

// TestCompare_IdenticalScenarios verifies that a scenario compared against an
// exact copy of itself is at distance zero under every metric.
func TestCompare_IdenticalScenarios(t *testing.T) {
	flows := map[[2]string]float64{
		{"A", "B"}: 2, {"B", "C"}: 1, {"C", "A"}: 3, {"C", "D"}: 1, {"D", "A"}: 1,
	}
	base := buildScenario(t, "base", flows)
	clone := buildScenario(t, "copy", flows)

	row, err := distance.Compare(base, clone)
	require.NoError(t, err)
	assert.Equal(t, "copy", row.ScenarioID)
	assert.Zero(t, row.Frobenius)
	assert.Zero(t, row.Markov)
	assert.Zero(t, row.EntropyRate)
}

// ---------------------------------------------------------------------------
// 2. Frobenius
// ---------------------------------------------------------------------------

// TestFrobenius_SingleEdgeShift verifies the norm of a one-entry difference.
func TestFrobenius_SingleEdgeShift(t *testing.T) {
	base := buildScenario(t, "base", map[[2]string]float64{{"A", "B"}: 3})
	other := buildScenario(t, "other", map[[2]string]float64{{"A", "B"}: 1})

	d := distance.Frobenius(base, other, scenario.Aligned(base, other))
	assert.InDelta(t, 2.0, d, 1e-12)
}

// TestFrobenius_NoSharedNodes verifies that disjoint node sets compare at 0.
func TestFrobenius_NoSharedNodes(t *testing.T) {
	base := buildScenario(t, "base", map[[2]string]float64{{"A", "B"}: 3})
	other := buildScenario(t, "other", map[[2]string]float64{{"X", "Y"}: 1})

	assert.Zero(t, distance.Frobenius(base, other, scenario.Aligned(base, other)))
}

// ---------------------------------------------------------------------------
// 3. Markov
// ---------------------------------------------------------------------------

// TestMarkov_StructuralShift verifies that rerouting flow moves the walk's
// stationary mass and yields a positive distance.
func TestMarkov_StructuralShift(t *testing.T) {
	base := buildScenario(t, "base", map[[2]string]float64{
		{"A", "B"}: 1, {"B", "C"}: 1, {"C", "A"}: 1,
	})
	other := buildScenario(t, "other", map[[2]string]float64{
		{"A", "B"}: 1, {"B", "A"}: 1, {"B", "C"}: 1, {"C", "B"}: 1,
	})

	d, err := distance.Markov(base, other, scenario.Aligned(base, other))
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)
}

// ---------------------------------------------------------------------------
// 4. Entropy rate
// ---------------------------------------------------------------------------

// TestEntropyRateDiff_Signed verifies the sign convention: a scenario whose
// exporters branch more than the baseline's scores positive, and the reverse
// comparison mirrors it.
func TestEntropyRateDiff_Signed(t *testing.T) {
	// Deterministic cycle: every state has exactly one successor, rate 0.
	base := buildScenario(t, "base", map[[2]string]float64{
		{"A", "B"}: 1, {"B", "C"}: 1, {"C", "A"}: 1,
	})
	// A branches evenly, so the walk gains entropy.
	other := buildScenario(t, "other", map[[2]string]float64{
		{"A", "B"}: 1, {"A", "C"}: 1, {"B", "A"}: 1, {"C", "A"}: 1,
	})

	d, err := distance.EntropyRateDiff(base, other)
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)

	flipped, err := distance.EntropyRateDiff(other, base)
	require.NoError(t, err)
	assert.InDelta(t, -d, flipped, 1e-12)
}
