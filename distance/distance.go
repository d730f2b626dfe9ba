// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/florianjehn/tradeshifts/matrix"
	"github.com/florianjehn/tradeshifts/scenario"
)

// Row is one line of the distance table: how far a scenario sits from the
// baseline under each metric.
type Row struct {
	// ScenarioID is the compared scenario's label.
	ScenarioID string

	// Frobenius is the L2 norm of the aligned adjacency difference.
	Frobenius float64

	// Markov is the Euclidean distance between aligned stationary
	// distributions.
	Markov float64

	// EntropyRate is the signed difference of full-graph entropy rates,
	// scenario minus baseline.
	EntropyRate float64
}

// Frobenius returns ‖A_base − A_other‖_F over the aligned node ordering.
// Nodes outside the ordering are excluded from both matrices.
// Complexity: O(n²)
func Frobenius(base, other *scenario.Scenario, aligned []string) float64 {
	if len(aligned) == 0 {
		return 0
	}
	diff := mat.NewDense(len(aligned), len(aligned), nil)
	diff.Sub(
		matrix.Adjacency(base.Graph, aligned),
		matrix.Adjacency(other.Graph, aligned),
	)

	return mat.Norm(diff, 2)
}

// Markov returns the Euclidean distance between the stationary distributions
// of the random walks on the two aligned subgraphs. Both walks run on the
// subgraph induced by the aligned node set, so the vectors share one shape.
// Complexity: O(n³) — eigen-decomposition.
func Markov(base, other *scenario.Scenario, aligned []string) (float64, error) {
	if len(aligned) == 0 {
		return 0, nil
	}

	piBase, err := alignedStationary(base, aligned)
	if err != nil {
		return 0, fmt.Errorf("distance: base scenario %q: %w", base.Label, err)
	}
	piOther, err := alignedStationary(other, aligned)
	if err != nil {
		return 0, fmt.Errorf("distance: scenario %q: %w", other.Label, err)
	}

	sum := 0.0
	for i := range piBase {
		d := piBase[i] - piOther[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// alignedStationary solves the walk on the subgraph induced by aligned.
func alignedStationary(s *scenario.Scenario, aligned []string) ([]float64, error) {
	walk, err := matrix.WalkMatrix(s.Graph.Subgraph(aligned), aligned)
	if err != nil {
		return nil, err
	}

	return matrix.Stationary(walk)
}

// EntropyRateDiff returns the signed entropy-rate difference, other minus
// base, each rate computed over the scenario's own full graph. Entropy rate
// is a scalar; no alignment is needed.
func EntropyRateDiff(base, other *scenario.Scenario) (float64, error) {
	hBase, err := matrix.EntropyRate(base.Graph)
	if err != nil {
		return 0, fmt.Errorf("distance: base scenario %q: %w", base.Label, err)
	}
	hOther, err := matrix.EntropyRate(other.Graph)
	if err != nil {
		return 0, fmt.Errorf("distance: scenario %q: %w", other.Label, err)
	}

	return hOther - hBase, nil
}

// Compare builds the distance table row for other against base, aligning the
// two graphs on their shared node set.
func Compare(base, other *scenario.Scenario) (Row, error) {
	aligned := scenario.Aligned(base, other)

	markov, err := Markov(base, other, aligned)
	if err != nil {
		return Row{}, err
	}
	entropy, err := EntropyRateDiff(base, other)
	if err != nil {
		return Row{}, err
	}

	return Row{
		ScenarioID:  other.Label,
		Frobenius:   Frobenius(base, other, aligned),
		Markov:      markov,
		EntropyRate: entropy,
	}, nil
}
