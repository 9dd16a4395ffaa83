package interleave

import (
	"math/rand"

	"github.com/rankeval/interleave/internal/dist"
)

// DefaultTau is the default skew parameter of the rank-selection power law.
const DefaultTau = 3.0

// DistributionCache memoizes the per-rank weights and cumulative probability
// tables used for document selection. A cache is safe for concurrent use and
// can be shared across engines via WithDistributionCache; engines using the
// same tau then reuse each other's tables.
type DistributionCache struct {
	cache *dist.Cache
}

// NewDistributionCache creates an empty distribution cache.
func NewDistributionCache() *DistributionCache {
	return &DistributionCache{cache: dist.NewCache()}
}

type options struct {
	tau     float64
	source  rand.Source
	cache   *dist.Cache
	logger  *Logger
	metrics MetricsCollector
}

// Option configures engine construction.
type Option func(*options)

// WithTau sets the skew parameter of the rank-selection distribution.
// Higher values bias selection harder toward the top surviving ranks.
// Defaults to DefaultTau; values <= 0 are rejected by the constructor.
func WithTau(tau float64) Option {
	return func(o *options) {
		o.tau = tau
	}
}

// WithSeed seeds the engine's random source, making interleavings
// reproducible across runs.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.source = rand.NewSource(seed)
	}
}

// WithRandSource supplies the engine's random source directly.
// If nil is passed, a time-seeded source is used.
func WithRandSource(src rand.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithDistributionCache shares a distribution cache across engines.
// If nil is passed, the engine gets a private cache.
func WithDistributionCache(c *DistributionCache) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c.cache
		}
	}
}

// WithLogger configures the engine's logger.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics configures the engine's metrics collector.
// If nil is passed, metrics collection is disabled.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}
