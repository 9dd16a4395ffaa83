package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankeval/interleave"
)

// clickRanker returns a click model that clicks every position contributed
// by the given ranker.
func clickRanker(ranker int) ClickFunc[string] {
	return func(r *interleave.Ranking[string]) []int {
		var clicks []int
		for i, idx := range r.Rankers() {
			if idx == ranker {
				clicks = append(clicks, i)
			}
		}
		return clicks
	}
}

func TestRun(t *testing.T) {
	lists := [][]string{
		{"a1", "a2", "a3"},
		{"b1", "b2", "b3"},
	}

	t.Run("BiasedClicksPickAClearWinner", func(t *testing.T) {
		report, err := Run(context.Background(), Config[string]{
			Lists:       lists,
			K:           4,
			Clicks:      clickRanker(0),
			Impressions: 50,
			Workers:     4,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, report.Rankers)
		assert.Equal(t, 50, report.Impressions)

		// Every impression holds at least one ranker-0 position, so every
		// impression is a ranker-0 win.
		assert.Equal(t, 50, report.Wins[0])
		assert.Equal(t, 0, report.Wins[1])
		assert.Equal(t, 50, report.Pairwise[0][1])
		assert.Equal(t, 0, report.Pairwise[1][0])
		assert.Equal(t, 0, report.Ties)

		assert.Equal(t, 1.0, report.Preference(0, 1))
		assert.Equal(t, 0.0, report.Preference(1, 0))
	})

	t.Run("NoClicksMeansAllTies", func(t *testing.T) {
		report, err := Run(context.Background(), Config[string]{
			Lists:       lists,
			K:           4,
			Clicks:      func(*interleave.Ranking[string]) []int { return nil },
			Impressions: 10,
		})
		require.NoError(t, err)

		assert.Equal(t, 10, report.Ties)
		assert.Equal(t, 0.5, report.Preference(0, 1))
	})

	t.Run("SeededSingleWorkerIsReproducible", func(t *testing.T) {
		cfg := Config[string]{
			Lists:       lists,
			K:           4,
			Clicks:      clickRanker(1),
			Impressions: 25,
			Workers:     1,
			NewMethod: func() (interleave.Method[string], error) {
				return interleave.NewProbabilistic[string](interleave.WithSeed(99))
			},
		}

		first, err := Run(context.Background(), cfg)
		require.NoError(t, err)
		second, err := Run(context.Background(), cfg)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 25, first.Wins[1])
	})

	t.Run("ConfigValidation", func(t *testing.T) {
		_, err := Run(context.Background(), Config[string]{
			Lists:  lists,
			K:      4,
			Clicks: clickRanker(0),
		})
		assert.ErrorIs(t, err, ErrNoImpressions)

		_, err = Run(context.Background(), Config[string]{
			K:           4,
			Clicks:      clickRanker(0),
			Impressions: 1,
		})
		assert.ErrorIs(t, err, interleave.ErrNoRankers)

		_, err = Run(context.Background(), Config[string]{
			Lists:       lists,
			K:           4,
			Impressions: 1,
		})
		assert.ErrorIs(t, err, ErrNoClickFunc)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, Config[string]{
			Lists:       lists,
			K:           4,
			Clicks:      clickRanker(0),
			Impressions: 1000,
			Workers:     1,
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
