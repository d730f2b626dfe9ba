// SPDX-License-Identifier: MIT

package postprocess

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/florianjehn/tradeshifts/centrality"
	"github.com/florianjehn/tradeshifts/community"
	"github.com/florianjehn/tradeshifts/core"
	"github.com/florianjehn/tradeshifts/diag"
	"github.com/florianjehn/tradeshifts/distance"
	"github.com/florianjehn/tradeshifts/matrix"
	"github.com/florianjehn/tradeshifts/percolation"
	"github.com/florianjehn/tradeshifts/scenario"
	"github.com/florianjehn/tradeshifts/stability"
)

// Engine runs the comparative analysis over one base scenario and its
// comparison scenarios. Construct with New; a built Engine is fully
// validated and immutable.
type Engine struct {
	base        *scenario.Scenario
	comparisons []*scenario.Scenario
	opts        Options

	// communities are engine-owned anchor-reordered copies, index 0 the
	// base. Input partitions are never touched.
	communities []scenario.Partition

	rng *rand.Rand
	log *zap.Logger
}

// New validates the configuration and assembles an Engine. The base
// scenario is required; comparisons may be empty. Anchor conflicts, a
// negative gamma, an unknown efficiency normalisation or a random-attack
// sample size below 2 abort construction.
func New(base *scenario.Scenario, comparisons []*scenario.Scenario, opts ...Option) (*Engine, error) {
	if base == nil {
		return nil, ErrNoScenario
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Gamma < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadGamma, o.Gamma)
	}
	if o.RandomAttackSampleSize < 2 {
		return nil, fmt.Errorf("%w: got %d", percolation.ErrSampleSize, o.RandomAttackSampleSize)
	}
	if !o.Normalisation.Valid() {
		return nil, fmt.Errorf("%w: %d", centrality.ErrBadNormalisation, int(o.Normalisation))
	}

	all := append([]*scenario.Scenario{base}, comparisons...)
	communities := make([]scenario.Partition, len(all))
	for i, s := range all {
		reordered, err := community.Reorder(s.Communities, o.Anchors)
		if err != nil {
			return nil, fmt.Errorf("postprocess: scenario %q: %w", s.Label, err)
		}
		communities[i] = reordered
	}

	return &Engine{
		base:        base,
		comparisons: comparisons,
		opts:        o,
		communities: communities,
		rng:         rand.New(rand.NewSource(o.Seed)),
		log:         o.Logger,
	}, nil
}

// scenarios returns base followed by all comparisons.
func (e *Engine) scenarios() []*scenario.Scenario {
	return append([]*scenario.Scenario{e.base}, e.comparisons...)
}

// Run executes every analysis in dependency order and returns the full
// result set. Data-quality gaps are collected as warnings on the result;
// only numerical failures (an unsolvable stationary distribution, a failed
// eigen-decomposition) abort the run.
func (e *Engine) Run() (*Results, error) {
	all := e.scenarios()
	res := &Results{Communities: e.communities}
	for _, s := range all {
		res.Labels = append(res.Labels, s.Label)
	}

	e.alignAndDiffImports(res)
	if err := e.measureDistances(res); err != nil {
		return nil, err
	}
	e.measureCentrality(res)
	e.compareCommunities(res)
	if err := e.measureNetworkScalars(res); err != nil {
		return nil, err
	}
	e.measureStability(res)
	if err := e.attack(res); err != nil {
		return nil, err
	}

	e.log.Info("analysis complete",
		zap.Int("scenarios", len(all)),
		zap.Int("warnings", len(res.Warnings)))

	return res, nil
}

// collect appends scenario-tagged warnings to the result and mirrors them
// to the logger.
func (e *Engine) collect(res *Results, label string, ws diag.Warnings) {
	for _, w := range ws {
		res.Warnings.Addf(w.Country, "%s: %s", label, w.Message)
		e.log.Warn(w.Message,
			zap.String("scenario", label),
			zap.String("country", w.Country))
	}
}

// alignAndDiffImports resolves aligned node sets and diffs import volumes
// over each comparison scenario's full country set. Countries unknown to the
// base get NaN entries plus a warning; the relative difference is a
// percentage, 0 where the base imports nothing.
func (e *Engine) alignAndDiffImports(res *Results) {
	baseImports := e.base.Imports()
	for _, s := range e.scenarios() {
		res.Imports = append(res.Imports, s.Imports())
	}

	for i, s := range e.comparisons {
		res.AlignedNodes = append(res.AlignedNodes, scenario.Aligned(e.base, s))

		imports := res.Imports[i+1]
		ids := make([]string, 0, len(imports))
		for id := range imports {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		abs := make(map[string]float64, len(ids))
		rel := make(map[string]float64, len(ids))
		var warnings diag.Warnings
		for _, id := range ids {
			b, known := baseImports[id]
			if !known {
				warnings.Addf(id, "not in the base scenario, no import change")
				abs[id] = math.NaN()
				rel[id] = math.NaN()
				continue
			}
			d := imports[id] - b
			abs[id] = d
			if b == 0 {
				rel[id] = 0 // nothing imported before; no meaningful ratio
				continue
			}
			rel[id] = d / b * 100
		}
		e.collect(res, s.Label, warnings)
		res.ImportsAbsDiff = append(res.ImportsAbsDiff, abs)
		res.ImportsRelDiff = append(res.ImportsRelDiff, rel)
	}
}

// measureDistances fills the graph-distance table.
func (e *Engine) measureDistances(res *Results) error {
	for _, s := range e.comparisons {
		row, err := distance.Compare(e.base, s)
		if err != nil {
			return err
		}
		res.Distances = append(res.Distances, row)
		e.log.Info("distances measured",
			zap.String("scenario", s.Label),
			zap.Float64("frobenius", row.Frobenius),
			zap.Float64("markov", row.Markov))
	}

	return nil
}

// measureCentrality fills degree maps and their extrema per scenario.
func (e *Engine) measureCentrality(res *Results) {
	for i, s := range e.scenarios() {
		in := centrality.Degree(s.Graph, core.In)
		out := centrality.Degree(s.Graph, core.Out)
		res.InDegree = append(res.InDegree, in)
		res.OutDegree = append(res.OutDegree, out)
		res.EntropicOutDegree = append(res.EntropicOutDegree,
			centrality.EntropicDegree(s.Graph, core.Out))

		res.GlobalExtrema = append(res.GlobalExtrema, DegreeExtrema{
			In:  centrality.FindExtrema(in),
			Out: centrality.FindExtrema(out),
		})
		res.PerCommunityExtrema = append(res.PerCommunityExtrema, CommunityExtrema{
			In:  centrality.CommunityExtrema(in, e.communities[i]),
			Out: centrality.CommunityExtrema(out, e.communities[i]),
		})
	}
}

// compareCommunities fills Jaccard similarity, role coordinates and
// community satisfaction.
func (e *Engine) compareCommunities(res *Results) {
	for _, s := range e.scenarios() {
		res.ZScores = append(res.ZScores, community.WithinDegreeZScores(s))
		res.Participation = append(res.Participation, community.Participation(s))
		res.Satisfaction = append(res.Satisfaction, community.Satisfaction(s))
	}
	for i, s := range e.comparisons {
		values, warnings := community.JaccardDiff(e.base, s)
		e.collect(res, s.Label, warnings)
		res.Jaccard = append(res.Jaccard, values)

		satDiff, satWarnings := community.SatisfactionDiff(res.Satisfaction[0], res.Satisfaction[i+1])
		e.collect(res, s.Label, satWarnings)
		res.SatisfactionDiff = append(res.SatisfactionDiff, satDiff)
	}
}

// measureNetworkScalars fills betweenness, clustering and efficiency.
func (e *Engine) measureNetworkScalars(res *Results) error {
	for _, s := range e.scenarios() {
		res.Betweenness = append(res.Betweenness, centrality.Betweenness(s.Graph))
		res.Clustering = append(res.Clustering, centrality.Clustering(s.Graph))

		eff, err := centrality.Efficiency(s.Graph, e.opts.Normalisation)
		if err != nil {
			return err
		}
		res.Efficiency = append(res.Efficiency, eff)
	}

	return nil
}

// measureStability fills the stability block, or leaves it nil when the
// risk index or geography is missing or unresolvable.
func (e *Engine) measureStability(res *Results) {
	if e.opts.Risk == nil || e.opts.Geo == nil {
		e.log.Info("stability analysis skipped, no risk index or geography configured")
		return
	}

	dm, err := stability.BuildDistanceMatrix(e.scenarios(), e.opts.Geo)
	if err != nil {
		// Unresolvable geography disables stability for the whole run.
		res.Warnings.Addf("", "stability unavailable: %v", err)
		e.log.Warn("stability analysis skipped", zap.Error(err))
		return
	}

	for _, s := range e.scenarios() {
		values, warnings := stability.NodeStability(s, e.opts.Risk, dm, e.opts.Gamma)
		e.collect(res, s.Label, warnings)
		res.NodeStability = append(res.NodeStability, values)
		res.NetworkStability = append(res.NetworkStability,
			stability.NetworkStability(s, values))
	}
	for i := range e.comparisons {
		res.StabilityDiff = append(res.StabilityDiff,
			stability.RelativeDiff(res.NodeStability[0], res.NodeStability[i+1]))
	}
}

// attack runs the three percolation strategies per scenario.
func (e *Engine) attack(res *Results) error {
	for i, s := range e.scenarios() {
		order := s.Graph.Nodes()
		adj := matrix.Adjacency(s.Graph, order)

		export, err := percolation.Threshold(adj, rank(res.OutDegree[i], order))
		if err != nil {
			return err
		}
		entropic, err := percolation.Threshold(adj, rank(res.EntropicOutDegree[i], order))
		if err != nil {
			return err
		}
		random, err := percolation.RandomThreshold(adj, e.opts.RandomAttackSampleSize, e.rng)
		if err != nil {
			return err
		}

		res.Percolation = append(res.Percolation, AttackSummary{
			Order:    order,
			Export:   export,
			Entropic: entropic,
			Random:   random,
		})
		e.log.Info("percolation thresholds",
			zap.String("scenario", s.Label),
			zap.Float64("export", export.Threshold),
			zap.Float64("entropic", entropic.Threshold),
			zap.Float64("random", random.MeanThreshold))
	}

	return nil
}

// rank projects a centrality map onto the matrix node ordering.
func rank(values map[string]float64, order []string) []float64 {
	priority := make([]float64, len(order))
	for i, id := range order {
		priority[i] = values[id]
	}

	return priority
}
