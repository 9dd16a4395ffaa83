package interleave

import "slices"

// Ranking is the result of an interleave or multileave: the blended documents
// in rank order and, for each position, the index of the ranker that
// contributed it. A Ranking is immutable once returned.
type Ranking[D comparable] struct {
	docs       []D
	rankers    []int
	numRankers int
}

func (r *Ranking[D]) append(doc D, ranker int) {
	r.docs = append(r.docs, doc)
	r.rankers = append(r.rankers, ranker)
}

// Len returns the number of blended positions.
func (r *Ranking[D]) Len() int {
	return len(r.docs)
}

// NumRankers returns the number of rankers that competed for positions.
func (r *Ranking[D]) NumRankers() int {
	return r.numRankers
}

// DocumentAt returns the document at position i.
func (r *Ranking[D]) DocumentAt(i int) D {
	return r.docs[i]
}

// RankerAt returns the index of the ranker that contributed position i.
func (r *Ranking[D]) RankerAt(i int) int {
	return r.rankers[i]
}

// Documents returns a copy of the blended documents in rank order.
func (r *Ranking[D]) Documents() []D {
	return slices.Clone(r.docs)
}

// Rankers returns a copy of the per-position contributing ranker indices.
func (r *Ranking[D]) Rankers() []int {
	return slices.Clone(r.rankers)
}
