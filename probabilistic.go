package interleave

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rankeval/interleave/internal/dist"
	"github.com/rankeval/interleave/internal/removal"
)

// Probabilistic implements probabilistic interleaving: each position of the
// blended result is drawn from a randomly chosen active ranker, and within a
// ranker the document at surviving rank r is drawn with probability
// proportional to 1/r^tau.
//
// An engine is not safe for concurrent use; create one per goroutine and
// share tables between them with WithDistributionCache.
type Probabilistic[D comparable] struct {
	tau     float64
	cache   *dist.Cache
	pool    *removal.Pool[D]
	rng     *rand.Rand
	logger  *Logger
	metrics MetricsCollector
}

// Compile time check to ensure Probabilistic fulfills the Method contract.
var _ Method[string] = (*Probabilistic[string])(nil)

// NewProbabilistic creates a probabilistic interleaving engine.
func NewProbabilistic[D comparable](opts ...Option) (*Probabilistic[D], error) {
	o := options{
		tau:     DefaultTau,
		metrics: NoopMetricsCollector{},
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.tau <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTau, o.tau)
	}

	if o.source == nil {
		o.source = rand.NewSource(time.Now().UnixNano()) // nolint gosec
	}
	if o.cache == nil {
		o.cache = dist.NewCache()
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}

	return &Probabilistic[D]{
		tau:     o.tau,
		cache:   o.cache,
		pool:    removal.NewPool[D](),
		rng:     rand.New(o.source),
		logger:  o.logger.WithTau(o.tau),
		metrics: o.metrics,
	}, nil
}

// Tau returns the engine's skew parameter.
func (p *Probabilistic[D]) Tau() float64 {
	return p.tau
}

// Interleave blends rankings a and b into a result of at most k documents.
// The result is shorter than k only when the rankings hold fewer than k
// distinct documents between them.
func (p *Probabilistic[D]) Interleave(k int, a, b []D) (*Ranking[D], error) {
	start := time.Now()
	r, err := p.interleave(k, a, b)
	p.metrics.RecordInterleave(k, time.Since(start), err)
	return r, err
}

func (p *Probabilistic[D]) interleave(k int, a, b []D) (*Ranking[D], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	seqs := []*removal.Sequence[D]{
		removal.NewSequence(p.pool, a),
		removal.NewSequence(p.pool, b),
	}
	defer drainAll(seqs)

	result := &Ranking[D]{numRankers: 2}
	for result.Len() < k {
		// Only rankers with surviving documents may be drawn; cross-list
		// removal can exhaust one ranker long before the other.
		active := activeIndexes(seqs)
		if len(active) == 0 {
			break
		}
		p.advance(seqs, active[p.rng.Intn(len(active))], result)
	}

	p.logger.Debug("interleave complete", "k", k, "positions", result.Len())

	return result, nil
}

// Multileave blends any number of rankings into a result of at most k
// documents. Rankers are rotated in a fresh random permutation each round,
// so every ranker with surviving documents contributes exactly once per
// completed round.
func (p *Probabilistic[D]) Multileave(k int, lists ...[]D) (*Ranking[D], error) {
	start := time.Now()
	r, err := p.multileave(k, lists)
	p.metrics.RecordMultileave(k, len(lists), time.Since(start), err)
	return r, err
}

func (p *Probabilistic[D]) multileave(k int, lists [][]D) (*Ranking[D], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if len(lists) == 0 {
		return nil, ErrNoRankers
	}

	seqs := make([]*removal.Sequence[D], len(lists))
	for i, list := range lists {
		seqs[i] = removal.NewSequence(p.pool, list)
	}
	defer drainAll(seqs)

	result := &Ranking[D]{numRankers: len(lists)}
	for result.Len() < k {
		round := activeIndexes(seqs)
		if len(round) == 0 {
			break
		}

		p.rng.Shuffle(len(round), func(i, j int) {
			round[i], round[j] = round[j], round[i]
		})

		for _, idx := range round {
			if result.Len() >= k {
				break
			}
			if seqs[idx].Len() == 0 {
				// Exhausted mid-round by cross-list removal.
				continue
			}
			p.advance(seqs, idx, result)
		}
	}

	p.logger.Debug("multileave complete", "k", k, "rankers", len(lists), "positions", result.Len())

	return result, nil
}

// advance draws one document from seqs[ranker], appends it to the result and
// removes it from every sequence. Removing from all sequences, not just the
// source, keeps overlapping rankings from surfacing a document twice and
// keeps surviving lengths consistent for later probability lookups.
func (p *Probabilistic[D]) advance(seqs []*removal.Sequence[D], ranker int, result *Ranking[D]) {
	doc := dist.Choose(p.cache, p.rng, p.tau, seqs[ranker])
	result.append(doc, ranker)
	for _, seq := range seqs {
		seq.Remove(doc)
	}
}

// Evaluate credits clicks (position indices into r) to the rankers that
// contributed those positions and returns an Outcome for every pair of
// rankers with unequal click counts. Ties emit nothing.
func (p *Probabilistic[D]) Evaluate(r *Ranking[D], clicks []int) ([]Outcome, error) {
	start := time.Now()
	outcomes, err := evaluateClicks(r, clicks)
	p.metrics.RecordEvaluate(len(clicks), time.Since(start), err)
	return outcomes, err
}

func activeIndexes[D comparable](seqs []*removal.Sequence[D]) []int {
	active := make([]int, 0, len(seqs))
	for i, s := range seqs {
		if s.Len() > 0 {
			active = append(active, i)
		}
	}
	return active
}

func drainAll[D comparable](seqs []*removal.Sequence[D]) {
	for _, s := range seqs {
		s.Drain()
	}
}
