// SPDX-License-Identifier: MIT

package percolation

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/florianjehn/tradeshifts/matrix"
)

// Sentinel errors for percolation configuration.
var (
	// ErrShapeMismatch indicates the priority vector does not match the
	// adjacency matrix.
	ErrShapeMismatch = errors.New("percolation: priority length does not match matrix size")

	// ErrSampleSize indicates a random-attack trial count below 2, for
	// which the standard error is undefined.
	ErrSampleSize = errors.New("percolation: random attack needs at least 2 trials")
)

// collapseTol absorbs floating-point noise around the critical radius 1;
// computed eigenvalues of an exactly-critical network can land a few ulps
// either side of it.
const collapseTol = 1e-9

// Result is one attack run: the collapse threshold, the removal order
// actually walked and the spectral-radius trajectory.
//
// The two sequences are aligned but offset by the intact step:
// Eigenvalues[0] is the untouched network's radius and Eigenvalues[i] the
// radius after i removals, so the removed-node count at Eigenvalues[i] is i
// and Removed[i-1] names the matrix index zeroed at that step
// (len(Eigenvalues) == len(Removed)+1 always).
type Result struct {
	Threshold   float64
	Removed     []int
	Eigenvalues []float64
}

// Threshold attacks the binarized adjacency matrix, removing nodes in
// decreasing priority order (ties break towards the lower index so runs are
// reproducible) and recomputing the spectral radius after each removal. It
// returns the fraction of nodes removed when the radius first reaches 1 or
// below; an already subcritical network has threshold 0 and an empty
// removal order.
// Complexity: O(V) eigen-decompositions, O(V⁴) total.
func Threshold(adj *mat.Dense, priority []float64) (Result, error) {
	n, cols := adj.Dims()
	if len(priority) != n || n != cols {
		return Result{}, fmt.Errorf("%w: %d priorities for %d×%d matrix", ErrShapeMismatch, len(priority), n, cols)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return priority[order[a]] > priority[order[b]]
	})

	remaining := matrix.Binarize(adj)
	radius, err := matrix.SpectralRadius(remaining)
	if err != nil {
		return Result{}, err
	}

	res := Result{Eigenvalues: []float64{radius}}
	for step, node := range order {
		if radius <= 1+collapseTol {
			break
		}
		knockOut(remaining, node)
		if radius, err = matrix.SpectralRadius(remaining); err != nil {
			return Result{}, err
		}
		res.Removed = append(res.Removed, node)
		res.Eigenvalues = append(res.Eigenvalues, radius)
		res.Threshold = float64(step+1) / float64(n)
	}

	return res, nil
}

// knockOut zeroes the node's row and column in place.
func knockOut(m *mat.Dense, node int) {
	n, _ := m.Dims()
	for j := 0; j < n; j++ {
		m.Set(node, j, 0)
		m.Set(j, node, 0)
	}
}
