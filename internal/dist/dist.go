// Package dist memoizes the power-law rank distributions used for
// probabilistic document selection.
//
// A ranker's surviving documents are drawn with probability proportional to
// 1/r^tau, where r is the surviving rank and tau controls how sharply
// selection favors the top. The per-rank weights and the cumulative tables
// derived from them depend only on (tau, n), so they are computed once and
// reused for the lifetime of the cache.
package dist

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/rankeval/interleave/internal/removal"
)

type weightKey struct {
	tau float64
	r   int
}

type tableKey struct {
	tau float64
	n   int
}

// Cache memoizes rank weights per (tau, r) and cumulative probability tables
// per (tau, n). Entries are never invalidated.
//
// Cache is safe for concurrent use and may be shared across engines; identical
// tau values reuse each other's tables.
type Cache struct {
	mu      sync.RWMutex
	weights map[weightKey]float64
	tables  map[tableKey][]float64
}

// NewCache creates an empty distribution cache.
func NewCache() *Cache {
	return &Cache{
		weights: make(map[weightKey]float64),
		tables:  make(map[tableKey][]float64),
	}
}

// Weight returns 1/r^tau, memoized per (tau, r). Requires r >= 1.
func (c *Cache) Weight(tau float64, r int) float64 {
	key := weightKey{tau: tau, r: r}

	c.mu.RLock()
	w, ok := c.weights[key]
	c.mu.RUnlock()
	if ok {
		return w
	}

	w = 1.0 / math.Pow(float64(r), tau)

	c.mu.Lock()
	c.weights[key] = w
	c.mu.Unlock()

	return w
}

// Table returns the cumulative probability table for drawing one of n
// surviving ranks. Entry i is the probability of drawing a rank <= i+1.
// The final entry is forced to exactly 1.0 so that any draw in [0, 1)
// terminates, regardless of floating-point drift in the partial sums.
//
// Callers must not mutate the returned slice.
func (c *Cache) Table(tau float64, n int) []float64 {
	key := tableKey{tau: tau, n: n}

	c.mu.RLock()
	t, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return t
	}

	var total float64
	for r := 1; r <= n; r++ {
		total += c.Weight(tau, r)
	}

	t = make([]float64, n)
	var acc float64
	for r := 1; r < n; r++ {
		acc += c.Weight(tau, r)
		t[r-1] = acc / total
	}
	t[n-1] = 1.0

	c.mu.Lock()
	// A concurrent caller may have stored an identical table; keeping the
	// first one keeps Table's return value stable.
	if existing, ok := c.tables[key]; ok {
		t = existing
	} else {
		c.tables[key] = t
	}
	c.mu.Unlock()

	return t
}

// Choose draws one surviving document from seq, biased toward the top
// surviving ranks by tau. The scan walks the cumulative table and the
// sequence in step and returns the element at the first index i where the
// uniform draw falls below table[i].
//
// Choose panics on an empty sequence: every caller guards its draws to
// rankers with surviving documents, so an empty draw is a selection bug,
// not an input condition.
func Choose[D comparable](c *Cache, rng *rand.Rand, tau float64, seq *removal.Sequence[D]) D {
	n := seq.Len()
	if n == 0 {
		panic("dist: choose from an empty sequence")
	}

	table := c.Table(tau, n)
	u := rng.Float64()

	i := 0
	for doc := range seq.All() {
		if u < table[i] {
			return doc
		}
		i++
	}

	panic(fmt.Sprintf("dist: cumulative table for n=%d never reached 1.0", n))
}
