package removal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func collect[D comparable](s *Sequence[D]) []D {
	var out []D
	for d := range s.All() {
		out = append(out, d)
	}
	return out
}

func TestSequence(t *testing.T) {
	t.Run("PreservesOrder", func(t *testing.T) {
		pool := NewPool[int]()
		seq := NewSequence(pool, []int{4, 1, 3, 2})

		assert.Equal(t, 4, seq.Len())
		assert.Equal(t, []int{4, 1, 3, 2}, collect(seq))
	})

	t.Run("DuplicateAppendIgnored", func(t *testing.T) {
		pool := NewPool[string]()
		seq := NewSequence(pool, []string{"a", "b", "a", "c", "b"})

		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, []string{"a", "b", "c"}, collect(seq))
	})

	t.Run("RemoveHeadMiddleTail", func(t *testing.T) {
		pool := NewPool[int]()
		seq := NewSequence(pool, []int{1, 2, 3, 4, 5})

		seq.Remove(1)
		assert.Equal(t, []int{2, 3, 4, 5}, collect(seq))

		seq.Remove(4)
		assert.Equal(t, []int{2, 3, 5}, collect(seq))

		seq.Remove(5)
		assert.Equal(t, []int{2, 3}, collect(seq))
		assert.Equal(t, 2, seq.Len())
	})

	t.Run("RemoveIsIdempotent", func(t *testing.T) {
		pool := NewPool[int]()
		seq := NewSequence(pool, []int{1, 2, 3})

		seq.Remove(2)
		seq.Remove(2)
		seq.Remove(42)

		assert.Equal(t, []int{1, 3}, collect(seq))
	})

	t.Run("AppendAfterTailRemoval", func(t *testing.T) {
		pool := NewPool[int]()
		seq := NewSequence(pool, []int{1, 2})

		seq.Remove(2)
		seq.Append(3)

		assert.Equal(t, []int{1, 3}, collect(seq))
	})

	t.Run("RemoveAllLeavesEmpty", func(t *testing.T) {
		pool := NewPool[int]()
		docs := []int{1, 2, 3, 4, 5, 6, 7, 8}
		seq := NewSequence(pool, docs)

		for _, d := range docs {
			seq.Remove(d)
		}

		assert.Equal(t, 0, seq.Len())
		assert.Empty(t, collect(seq))
	})

	t.Run("DrainReleasesSlotsForReuse", func(t *testing.T) {
		pool := NewPool[int]()

		seq := NewSequence(pool, []int{1, 2, 3})
		seq.Drain()
		slots := len(pool.nodes)

		// A fresh sequence of the same shape reuses the drained slots
		// instead of growing the pool.
		next := NewSequence(pool, []int{7, 8, 9})
		assert.Equal(t, slots, len(pool.nodes))
		assert.Equal(t, []int{7, 8, 9}, collect(next))
	})

	t.Run("SequencesShareOnePool", func(t *testing.T) {
		pool := NewPool[int]()
		a := NewSequence(pool, []int{1, 2, 3})
		b := NewSequence(pool, []int{3, 2, 1})

		a.Remove(2)

		assert.Equal(t, []int{1, 3}, collect(a))
		assert.Equal(t, []int{3, 2, 1}, collect(b))
	})
}

// TestSequenceModel drives a Sequence against a plain-slice reference model
// with random append/remove interleavings.
func TestSequenceModel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pool := NewPool[int]()
		seq := NewSequence(pool, nil)

		var model []int
		ops := rapid.IntRange(1, 200).Draw(rt, "ops")

		for i := 0; i < ops; i++ {
			v := rapid.IntRange(0, 15).Draw(rt, "v")

			if rapid.Bool().Draw(rt, "append") {
				if !slices.Contains(model, v) {
					model = append(model, v)
				}
				seq.Append(v)
			} else {
				if idx := slices.Index(model, v); idx >= 0 {
					model = slices.Delete(model, idx, idx+1)
				}
				seq.Remove(v)
			}

			require.Equal(rt, len(model), seq.Len())
			require.True(rt, slices.Equal(model, collect(seq)),
				"model %v != sequence %v", model, collect(seq))
		}
	})
}
