// SPDX-License-Identifier: MIT

// Package matrix_test validates the graph-to-matrix algebra.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/florianjehn/tradeshifts/core"
	"github.com/florianjehn/tradeshifts/matrix"
)

// lineGraph builds A→B→C with uniform weight 1.
func lineGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 1))
	require.NoError(t, g.SetEdge("B", "C", 1))

	return g
}

// ------------------------------------------------------------------------
// 1. Adjacency: caller-supplied ordering, missing nodes, zero fill.
// ------------------------------------------------------------------------

func TestAdjacency_RespectsOrdering(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 3))
	require.NoError(t, g.SetEdge("B", "A", 7))

	a := matrix.Adjacency(g, []string{"B", "A"})
	assert.Equal(t, 7.0, a.At(0, 1)) // B→A
	assert.Equal(t, 3.0, a.At(1, 0)) // A→B
	assert.Equal(t, 0.0, a.At(0, 0))
}

func TestAdjacency_UnknownNodeGivesZeroRowAndColumn(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 3))

	a := matrix.Adjacency(g, []string{"A", "B", "Nowhere"})
	r, c := a.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, a.At(2, i))
		assert.Equal(t, 0.0, a.At(i, 2))
	}
}

func TestBinarize(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0, 42.5, 0.001, 0})
	b := matrix.Binarize(m)
	assert.Equal(t, []float64{0, 1, 1, 0}, b.RawMatrix().Data)
}

// ------------------------------------------------------------------------
// 2. Right-stochastic rows, including absorbing (all-zero) rows.
// ------------------------------------------------------------------------

func TestRightStochastic_RowsSumToOne(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		2, 2, 0,
		0, 0, 5,
		0, 0, 0, // absorbing row must stay zero
	})
	p, err := matrix.RightStochastic(m)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, p.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, p.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, p.At(1, 2), 1e-12)
	for j := 0; j < 3; j++ {
		assert.Equal(t, 0.0, p.At(2, j))
	}
}

func TestRightStochastic_Errors(t *testing.T) {
	_, err := matrix.RightStochastic(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, err = matrix.RightStochastic(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
}

func TestWalkMatrix_AbsorbingRowBecomesSelfLoop(t *testing.T) {
	g := lineGraph(t) // C has no outgoing flow
	p, err := matrix.WalkMatrix(g, g.Nodes())
	require.NoError(t, err)

	// Row of C (index 2 in sorted order) is a unit self-loop.
	assert.Equal(t, 1.0, p.At(2, 2))
	assert.Equal(t, 0.0, p.At(2, 0))
	// Non-absorbing rows are untouched.
	assert.Equal(t, 1.0, p.At(0, 1))
}

// ------------------------------------------------------------------------
// 3. Stationary distribution.
// ------------------------------------------------------------------------

func TestStationary_TwoStateChain(t *testing.T) {
	// Classic two-state chain with known stationary vector (1/3, 2/3).
	p := mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		0.25, 0.75,
	})
	pi, err := matrix.Stationary(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, pi[0], 1e-9)
	assert.InDelta(t, 2.0/3.0, pi[1], 1e-9)
}

func TestStationary_CycleIsUniform(t *testing.T) {
	// Deterministic 3-cycle: stationary distribution is uniform.
	p := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	})
	pi, err := matrix.Stationary(p)
	require.NoError(t, err)
	for _, v := range pi {
		assert.InDelta(t, 1.0/3.0, v, 1e-9)
	}
}

func TestStationary_EmptyMatrix(t *testing.T) {
	_, err := matrix.Stationary(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestStationary_NoUnitEigenvalue(t *testing.T) {
	// A strictly contracting matrix has no eigenvalue near 1.
	m := mat.NewDense(2, 2, []float64{0.1, 0, 0, 0.1})
	_, err := matrix.Stationary(m)
	require.ErrorIs(t, err, matrix.ErrNoStationary)
}

// ------------------------------------------------------------------------
// 4. Spectral radius.
// ------------------------------------------------------------------------

func TestSpectralRadius_KnownValues(t *testing.T) {
	// Diagonal matrix: radius is the largest |entry|.
	m := mat.NewDense(2, 2, []float64{-3, 0, 0, 2})
	r, err := matrix.SpectralRadius(m)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r, 1e-9)

	// Empty matrix: fully removed network.
	r, err = matrix.SpectralRadius(&mat.Dense{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestSpectralRadius_DirectedCycle(t *testing.T) {
	// Binary 3-cycle adjacency has spectral radius 1.
	m := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	})
	r, err := matrix.SpectralRadius(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-9)
}

// ------------------------------------------------------------------------
// 5. Entropy rate: end-to-end over a graph.
// ------------------------------------------------------------------------

func TestEntropyRate_LineGraphStationaryValid(t *testing.T) {
	g := lineGraph(t)

	// The stationary distribution of the underlying walk must be a valid
	// probability vector even with an absorbing final state.
	p, err := matrix.WalkMatrix(g, g.Nodes())
	require.NoError(t, err)
	pi, err := matrix.Stationary(p)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range pi {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	rate, err := matrix.EntropyRate(g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rate, 0.0)
}

func TestEntropyRate_UniformTwoCycle(t *testing.T) {
	// A↔B with equal weights: the walk alternates deterministically,
	// every row has zero entropy, so the rate is 0.
	g := core.NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 1))
	require.NoError(t, g.SetEdge("B", "A", 1))

	rate, err := matrix.EntropyRate(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, rate, 1e-12)
}

func TestEntropyRate_BranchingIncreasesEntropy(t *testing.T) {
	// A node with two equally likely outgoing flows contributes ln(2).
	g := core.NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 1))
	require.NoError(t, g.SetEdge("A", "C", 1))
	require.NoError(t, g.SetEdge("B", "A", 1))
	require.NoError(t, g.SetEdge("C", "A", 1))

	rate, err := matrix.EntropyRate(g)
	require.NoError(t, err)
	// π(A)=1/2, H(A)=ln 2; B and C are deterministic.
	assert.InDelta(t, 0.5*math.Log(2), rate, 1e-9)
}

func TestEntropyRate_EmptyGraph(t *testing.T) {
	_, err := matrix.EntropyRate(core.NewGraph())
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}
