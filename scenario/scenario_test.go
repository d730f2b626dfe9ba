// SPDX-License-Identifier: MIT

// Package scenario_test validates Scenario assembly, flow tables and the
// alignment resolver.
package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianjehn/tradeshifts/core"
	"github.com/florianjehn/tradeshifts/scenario"
)

// buildGraph wires the given exporter→importer edges into a fresh graph.
func buildGraph(t *testing.T, edges map[[2]string]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for pair, w := range edges {
		require.NoError(t, g.SetEdge(pair[0], pair[1], w))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Construction and partition invariants.
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	_, err := scenario.New("s", nil, nil, nil)
	require.ErrorIs(t, err, scenario.ErrNilGraph)
}

func TestNew_PartitionMustCover(t *testing.T) {
	g := buildGraph(t, map[[2]string]float64{{"A", "B"}: 1})
	_, err := scenario.New("s", g, nil, scenario.Partition{scenario.NewCommunity("A")})
	require.ErrorIs(t, err, scenario.ErrBadPartition)
}

func TestNew_PartitionMustBeDisjoint(t *testing.T) {
	g := buildGraph(t, map[[2]string]float64{{"A", "B"}: 1})
	p := scenario.Partition{
		scenario.NewCommunity("A", "B"),
		scenario.NewCommunity("B"),
	}
	_, err := scenario.New("s", g, nil, p)
	require.ErrorIs(t, err, scenario.ErrBadPartition)
}

func TestNew_PartitionMustUseGraphNodes(t *testing.T) {
	g := buildGraph(t, map[[2]string]float64{{"A", "B"}: 1})
	p := scenario.Partition{scenario.NewCommunity("A", "B", "Ghost")}
	_, err := scenario.New("s", g, nil, p)
	require.ErrorIs(t, err, scenario.ErrBadPartition)
}

func TestPartition_Find(t *testing.T) {
	p := scenario.Partition{
		scenario.NewCommunity("A"),
		scenario.NewCommunity("B", "C"),
	}
	assert.Equal(t, 0, p.Find("A"))
	assert.Equal(t, 1, p.Find("C"))
	assert.Equal(t, -1, p.Find("Z"))
}

// ------------------------------------------------------------------------
// 2. Flow table and import totals.
// ------------------------------------------------------------------------

func TestFlowTable_SetAtRowSums(t *testing.T) {
	ft := scenario.NewFlowTable([]string{"A", "B"}, []string{"A", "B", "C"})
	require.NoError(t, ft.Set("A", "C", 4))
	require.NoError(t, ft.Set("A", "B", 1))
	require.NoError(t, ft.Set("B", "C", 2))
	require.ErrorIs(t, ft.Set("C", "A", 1), scenario.ErrShape)

	v, ok := ft.At("A", "C")
	require.True(t, ok)
	assert.Equal(t, 4.0, v)
	_, ok = ft.At("A", "Nowhere")
	assert.False(t, ok)

	assert.Equal(t, map[string]float64{"A": 5, "B": 2}, ft.RowSums())
}

func TestImports_FallsBackToGraphInWeights(t *testing.T) {
	g := buildGraph(t, map[[2]string]float64{
		{"A", "B"}: 2,
		{"C", "B"}: 3,
	})
	s, err := scenario.New("s", g, nil, scenario.Partition{scenario.NewCommunity("A", "B", "C")})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 5, "C": 0}, s.Imports())
}

// ------------------------------------------------------------------------
// 3. Alignment resolver.
// ------------------------------------------------------------------------

func TestAligned_SortedIntersection(t *testing.T) {
	base := buildGraph(t, map[[2]string]float64{
		{"C", "A"}: 1,
		{"A", "B"}: 1,
	})
	other := buildGraph(t, map[[2]string]float64{
		{"D", "C"}: 1,
		{"C", "A"}: 1,
	})
	sb, err := scenario.New("base", base, nil, scenario.Partition{scenario.NewCommunity("A", "B", "C")})
	require.NoError(t, err)
	so, err := scenario.New("other", other, nil, scenario.Partition{scenario.NewCommunity("A", "C", "D")})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, scenario.Aligned(sb, so))
}

func TestAligned_DisjointNodeSets(t *testing.T) {
	a := buildGraph(t, map[[2]string]float64{{"A", "B"}: 1})
	b := buildGraph(t, map[[2]string]float64{{"X", "Y"}: 1})
	sa, err := scenario.New("a", a, nil, scenario.Partition{scenario.NewCommunity("A", "B")})
	require.NoError(t, err)
	sb, err := scenario.New("b", b, nil, scenario.Partition{scenario.NewCommunity("X", "Y")})
	require.NoError(t, err)

	assert.Empty(t, scenario.Aligned(sa, sb))
}
