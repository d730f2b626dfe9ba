// SPDX-License-Identifier: MIT

package postprocess

import (
	"errors"

	"go.uber.org/zap"

	"github.com/florianjehn/tradeshifts/centrality"
	"github.com/florianjehn/tradeshifts/stability"
)

// Sentinel errors for engine configuration.
var (
	// ErrNoScenario indicates construction without a base scenario.
	ErrNoScenario = errors.New("postprocess: base scenario is required")

	// ErrBadGamma indicates a negative distance-decay exponent.
	ErrBadGamma = errors.New("postprocess: gamma must be non-negative")
)

// Options bundles all tunables of an analysis run.
type Options struct {
	// Anchors pins the listed countries' communities to the front of each
	// scenario's partition order, for consistent colouring downstream.
	// Empty means keep the upstream order.
	Anchors []string

	// Normalisation selects the efficiency denominator.
	Normalisation centrality.Normalisation

	// Gamma is the distance-decay exponent of the stability index; 0 turns
	// geographic distance off entirely.
	Gamma float64

	// RandomAttackSampleSize is the number of random percolation trials.
	RandomAttackSampleSize int

	// Risk is the external per-country stability score. Nil disables the
	// stability analysis.
	Risk stability.RiskIndex

	// Geo resolves pairwise country distances. Nil disables the stability
	// analysis.
	Geo stability.DistanceProvider

	// Seed drives the random-attack priority draws, fixed for
	// reproducibility.
	Seed int64

	// Logger receives progress and mirrored warnings.
	Logger *zap.Logger
}

// DefaultOptions returns the engine defaults: weak efficiency
// normalisation, gamma 1, 100 random trials, no stability inputs, a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		Normalisation:          centrality.NormWeak,
		Gamma:                  1,
		RandomAttackSampleSize: 100,
		Seed:                   1,
		Logger:                 zap.NewNop(),
	}
}

// Option overrides one engine default.
type Option func(*Options)

// WithAnchors pins anchor countries' communities first in partition order.
func WithAnchors(anchors ...string) Option {
	return func(o *Options) { o.Anchors = anchors }
}

// WithNormalisation selects the efficiency normalisation mode.
func WithNormalisation(n centrality.Normalisation) Option {
	return func(o *Options) { o.Normalisation = n }
}

// WithGamma sets the stability distance-decay exponent.
func WithGamma(gamma float64) Option {
	return func(o *Options) { o.Gamma = gamma }
}

// WithRandomAttackSampleSize sets the random percolation trial count.
func WithRandomAttackSampleSize(n int) Option {
	return func(o *Options) { o.RandomAttackSampleSize = n }
}

// WithRisk supplies the external per-country risk index.
func WithRisk(risk stability.RiskIndex) Option {
	return func(o *Options) { o.Risk = risk }
}

// WithGeo supplies the country distance resolver.
func WithGeo(geo stability.DistanceProvider) Option {
	return func(o *Options) { o.Geo = geo }
}

// WithSeed fixes the random-attack seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes progress and warnings to the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) { o.Logger = log }
}
