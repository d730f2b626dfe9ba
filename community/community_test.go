// SPDX-License-Identifier: MIT

package community_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianjehn/tradeshifts/community"
	"github.com/florianjehn/tradeshifts/core"
	"github.com/florianjehn/tradeshifts/scenario"
)

// buildScenario assembles a scenario from explicit flows and communities.
func buildScenario(t *testing.T, label string, flows map[[2]string]float64, parts scenario.Partition) *scenario.Scenario {
	t.Helper()
	g := core.NewGraph()
	for pair, w := range flows {
		require.NoError(t, g.SetEdge(pair[0], pair[1], w))
	}
	s, err := scenario.New(label, g, nil, parts)
	require.NoError(t, err)
	return s
}

// ---------------------------------------------------------------------------
// 1. Reorder
// ---------------------------------------------------------------------------

// TestReorder_AnchorsFirst verifies anchor communities move to the front in
// anchor order, the rest keeping their relative order, membership untouched.
func TestReorder_AnchorsFirst(t *testing.T) {
	p := scenario.Partition{
		scenario.NewCommunity("A"),
		scenario.NewCommunity("B"),
		scenario.NewCommunity("C"),
	}

	out, err := community.Reorder(p, []string{"C", "A"})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.True(t, out[0].Has("C"))
	assert.True(t, out[1].Has("A"))
	assert.True(t, out[2].Has("B"))

	// Unknown anchors are skipped, not errors.
	out, err = community.Reorder(p, []string{"Z", "B"})
	require.NoError(t, err)
	assert.True(t, out[0].Has("B"))
}

// TestReorder_AmbiguousAnchors verifies the conflict sentinel when two
// anchors resolve to one community.
func TestReorder_AmbiguousAnchors(t *testing.T) {
	p := scenario.Partition{scenario.NewCommunity("A", "B")}

	_, err := community.Reorder(p, []string{"A", "B"})
	assert.ErrorIs(t, err, community.ErrAnchorConflict)
}

// ---------------------------------------------------------------------------
// 2. Jaccard
// ---------------------------------------------------------------------------

// TestJaccardDiff_IdenticalAndDisjoint verifies the 1.0 / 0.0 boundary cases
// and symmetry of the underlying index.
func TestJaccardDiff_IdenticalAndDisjoint(t *testing.T) {
	flows := map[[2]string]float64{{"A", "B"}: 1, {"C", "D"}: 1}
	same := scenario.Partition{
		scenario.NewCommunity("A", "B"),
		scenario.NewCommunity("C", "D"),
	}
	base := buildScenario(t, "base", flows, same)
	clone := buildScenario(t, "clone", flows, scenario.Partition{
		scenario.NewCommunity("A", "B"),
		scenario.NewCommunity("C", "D"),
	})

	values, warnings := community.JaccardDiff(base, clone)
	assert.Empty(t, warnings)
	for _, id := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, 1.0, values[id], id)
	}

	// B's co-members flip entirely: {A} in base vs {C} in shuffled.
	shuffled := buildScenario(t, "shuffled", flows, scenario.Partition{
		scenario.NewCommunity("B", "C"),
		scenario.NewCommunity("A", "D"),
	})
	values, _ = community.JaccardDiff(base, shuffled)
	assert.Zero(t, values["B"])

	reverse, _ := community.JaccardDiff(shuffled, base)
	assert.Equal(t, values["B"], reverse["B"])
}

// TestJaccardDiff_MissingCommunity verifies skip-and-warn when the country
// is absent from the other scenario's partition.
func TestJaccardDiff_MissingCommunity(t *testing.T) {
	base := buildScenario(t, "base",
		map[[2]string]float64{{"A", "B"}: 1},
		scenario.Partition{scenario.NewCommunity("A", "B")})
	other := buildScenario(t, "other",
		map[[2]string]float64{{"A", "C"}: 1},
		scenario.Partition{scenario.NewCommunity("A", "C")})

	values, warnings := community.JaccardDiff(base, other)
	assert.NotContains(t, values, "B")
	require.Len(t, warnings, 1)
	assert.Equal(t, "B", warnings[0].Country)
}

// ---------------------------------------------------------------------------
// 3. Role coordinates
// ---------------------------------------------------------------------------

// TestWithinDegreeZScores verifies z-scores on a three-member line community
// and the NaN marker for zero-variance communities.
func TestWithinDegreeZScores(t *testing.T) {
	s := buildScenario(t, "s",
		map[[2]string]float64{{"A", "B"}: 1, {"B", "C"}: 1, {"D", "E"}: 1},
		scenario.Partition{
			scenario.NewCommunity("A", "B", "C"),
			scenario.NewCommunity("D", "E"),
		})

	z := community.WithinDegreeZScores(s)
	assert.InDelta(t, math.Sqrt2, z["B"], 1e-12)
	assert.InDelta(t, -math.Sqrt2/2, z["A"], 1e-12)
	assert.InDelta(t, -math.Sqrt2/2, z["C"], 1e-12)

	// D and E both have within-degree 1: no variance to normalize by.
	assert.True(t, math.IsNaN(z["D"]))
	assert.True(t, math.IsNaN(z["E"]))
}

// TestParticipation verifies the [0,1] bounds, the all-in-one-community
// zero, the even-spread value and the isolated-node convention.
func TestParticipation(t *testing.T) {
	s := buildScenario(t, "s",
		map[[2]string]float64{{"A", "B"}: 1, {"A", "C"}: 1, {"B", "C"}: 2},
		scenario.Partition{
			scenario.NewCommunity("A", "B"),
			scenario.NewCommunity("C"),
		})
	require.NoError(t, s.Graph.AddNode("Z"))
	s.Communities = append(s.Communities, scenario.NewCommunity("Z"))

	p := community.Participation(s)
	// A links B (own community) and C (other): P = 1 − 2·(1/2)² = 1/2.
	assert.InDelta(t, 0.5, p["A"], 1e-12)
	assert.Zero(t, p["Z"]) // isolated
	for id, v := range p {
		assert.GreaterOrEqual(t, v, 0.0, id)
		assert.LessOrEqual(t, v, 1.0, id)
	}
}

// ---------------------------------------------------------------------------
// 4. Satisfaction
// ---------------------------------------------------------------------------

// TestSatisfaction verifies the within-community import share.
func TestSatisfaction(t *testing.T) {
	s := buildScenario(t, "s",
		map[[2]string]float64{{"A", "B"}: 3, {"C", "B"}: 1, {"B", "C"}: 2},
		scenario.Partition{
			scenario.NewCommunity("A", "B"),
			scenario.NewCommunity("C"),
		})

	sat := community.Satisfaction(s)
	assert.InDelta(t, 0.75, sat["B"], 1e-12) // 3 of 4 from inside
	assert.Zero(t, sat["A"])                 // imports nothing
}

// TestSatisfactionDiff verifies the plain change against the base: a country
// rising from a zero share reports the new share, and only countries absent
// from the base degrade to NaN with a warning.
func TestSatisfactionDiff(t *testing.T) {
	base := map[string]float64{"A": 0, "B": 0.75}
	other := map[string]float64{"A": 0.4, "B": 0.5, "X": 0.3}

	diff, warnings := community.SatisfactionDiff(base, other)
	assert.InDelta(t, 0.4, diff["A"], 1e-12) // zero base is a real change
	assert.InDelta(t, -0.25, diff["B"], 1e-12)
	assert.True(t, math.IsNaN(diff["X"])) // absent from base

	require.Len(t, warnings, 1)
	assert.Equal(t, "X", warnings[0].Country)
}
