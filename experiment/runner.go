// Package experiment runs repeated interleaved impressions and aggregates
// the pairwise ranker preferences they produce.
//
// A single interleaved impression yields at most one noisy preference per
// ranker pair; experiments aggregate many impressions of the same rankings
// under a click model to estimate which ranker users actually prefer.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rankeval/interleave"
)

var (
	// ErrNoImpressions is returned when a run is configured with a
	// non-positive impression count.
	ErrNoImpressions = errors.New("impressions must be positive")
	// ErrNoClickFunc is returned when a run is configured without a click model.
	ErrNoClickFunc = errors.New("a click function is required")
)

// ClickFunc simulates or replays user clicks for one impression. It receives
// the blended ranking and returns the clicked position indices.
type ClickFunc[D comparable] func(r *interleave.Ranking[D]) []int

// Config describes one experiment: the competing rankings, the click model
// and how many impressions to run.
type Config[D comparable] struct {
	// Lists holds one ranked list per ranker under comparison.
	Lists [][]D

	// K caps the length of each blended ranking.
	K int

	// Clicks is the click model applied to each impression.
	Clicks ClickFunc[D]

	// Impressions is the number of blended rankings to generate and evaluate.
	Impressions int

	// Workers bounds the number of concurrent impressions.
	// Defaults to GOMAXPROCS.
	Workers int

	// NewMethod builds one engine per worker. Engines are not safe for
	// concurrent use, so each worker owns its own. If nil, workers get
	// probabilistic engines sharing a single distribution cache.
	NewMethod func() (interleave.Method[D], error)
}

// Report aggregates the outcomes of an experiment.
type Report struct {
	Rankers     int
	Impressions int

	// Wins[i] counts outcomes where ranker i beat some other ranker.
	Wins []int

	// Pairwise[i][j] counts impressions in which ranker i beat ranker j.
	Pairwise [][]int

	// Ties counts impressions that produced no preference at all.
	Ties int
}

// Preference returns the net preference of ranker i over ranker j:
// the fraction of deciding impressions won by i, or 0.5 if no impression
// decided the pair.
func (r *Report) Preference(i, j int) float64 {
	decided := r.Pairwise[i][j] + r.Pairwise[j][i]
	if decided == 0 {
		return 0.5
	}
	return float64(r.Pairwise[i][j]) / float64(decided)
}

// Run executes the experiment and aggregates a Report. Impressions are
// distributed across workers; each worker owns its engine, so results are
// reproducible only for single-worker runs with a seeded method.
func Run[D comparable](ctx context.Context, cfg Config[D]) (*Report, error) {
	if cfg.Impressions <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoImpressions, cfg.Impressions)
	}
	if len(cfg.Lists) == 0 {
		return nil, interleave.ErrNoRankers
	}
	if cfg.Clicks == nil {
		return nil, ErrNoClickFunc
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Impressions {
		workers = cfg.Impressions
	}

	newMethod := cfg.NewMethod
	if newMethod == nil {
		shared := interleave.NewDistributionCache()
		newMethod = func() (interleave.Method[D], error) {
			return interleave.NewProbabilistic[D](interleave.WithDistributionCache(shared))
		}
	}

	report := &Report{
		Rankers:     len(cfg.Lists),
		Impressions: cfg.Impressions,
		Wins:        make([]int, len(cfg.Lists)),
		Pairwise:    make([][]int, len(cfg.Lists)),
	}
	for i := range report.Pairwise {
		report.Pairwise[i] = make([]int, len(cfg.Lists))
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		share := cfg.Impressions / workers
		if w < cfg.Impressions%workers {
			share++
		}
		if share == 0 {
			continue
		}

		g.Go(func() error {
			m, err := newMethod()
			if err != nil {
				return err
			}

			wins := make([]int, len(cfg.Lists))
			pairwise := make([][]int, len(cfg.Lists))
			for i := range pairwise {
				pairwise[i] = make([]int, len(cfg.Lists))
			}
			ties := 0

			for i := 0; i < share; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				r, err := m.Multileave(cfg.K, cfg.Lists...)
				if err != nil {
					return err
				}

				outcomes, err := m.Evaluate(r, cfg.Clicks(r))
				if err != nil {
					return err
				}

				if len(outcomes) == 0 {
					ties++
					continue
				}
				for _, o := range outcomes {
					wins[o.Winner]++
					pairwise[o.Winner][o.Loser]++
				}
			}

			mu.Lock()
			defer mu.Unlock()
			report.Ties += ties
			for i := range wins {
				report.Wins[i] += wins[i]
				for j := range pairwise[i] {
					report.Pairwise[i][j] += pairwise[i][j]
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}
