// SPDX-License-Identifier: MIT

package percolation

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// RandomResult aggregates repeated random attacks: the threshold's mean and
// standard error over all trials, plus every per-trial trajectory for
// confidence-band plotting.
type RandomResult struct {
	MeanThreshold float64
	StdErr        float64
	Trials        []Result
}

// RandomThreshold runs the attack with independent uniform priorities drawn
// per node per trial and aggregates the thresholds. Fewer than 2 trials have
// no defined standard error and return ErrSampleSize.
func RandomThreshold(adj *mat.Dense, trials int, rng *rand.Rand) (RandomResult, error) {
	if trials < 2 {
		return RandomResult{}, fmt.Errorf("%w: got %d", ErrSampleSize, trials)
	}

	n, _ := adj.Dims()
	thresholds := make([]float64, trials)
	out := RandomResult{Trials: make([]Result, trials)}
	for t := 0; t < trials; t++ {
		priority := make([]float64, n)
		for i := range priority {
			priority[i] = rng.Float64()
		}
		res, err := Threshold(adj, priority)
		if err != nil {
			return RandomResult{}, err
		}
		thresholds[t] = res.Threshold
		out.Trials[t] = res
	}

	out.MeanThreshold = stat.Mean(thresholds, nil)
	out.StdErr = stat.StdErr(stat.StdDev(thresholds, nil), float64(trials))

	return out, nil
}
