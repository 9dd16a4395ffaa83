package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRRF(t *testing.T) {
	t.Run("SharedDocumentRanksFirst", func(t *testing.T) {
		fused := RRF(0,
			[]string{"x", "a", "b"},
			[]string{"y", "x", "c"},
		)

		// x appears in both lists and outscores every single-list document.
		assert.Equal(t, "x", fused[0])
		assert.Len(t, fused, 5)
	})

	t.Run("SymmetricScoresKeepFirstSeenOrder", func(t *testing.T) {
		// a and b swap ranks across the lists, so their scores are equal;
		// ties fall back to first-seen order.
		fused := RRF(0,
			[]string{"a", "b", "c"},
			[]string{"b", "a", "d"},
		)

		assert.Equal(t, []string{"a", "b", "c", "d"}, fused)
	})

	t.Run("SingleList", func(t *testing.T) {
		fused := RRF(0, []int{3, 1, 2})
		assert.Equal(t, []int{3, 1, 2}, fused)
	})

	t.Run("DuplicatesWithinAListCountOnce", func(t *testing.T) {
		fused := RRF(0, []string{"a", "a", "b"})
		assert.Equal(t, []string{"a", "b"}, fused)
	})

	t.Run("NoLists", func(t *testing.T) {
		assert.Empty(t, RRF[string](0))
	})

	t.Run("SmallKSharpensTopHeaviness", func(t *testing.T) {
		// With k=1 a single top rank (1/2) outscores a document shared
		// at rank 3 by both lists (2/5).
		fused := RRF(1,
			[]string{"top", "z", "z2", "shared", "shared2"},
			[]string{"z3", "z4", "z5", "shared", "shared2"},
		)
		assert.Equal(t, "top", fused[0])
	})
}
