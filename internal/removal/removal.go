// Package removal provides an ordered document collection with O(1)
// removal by identity.
//
// Interleaving repeatedly draws a document and then deletes it from every
// competing list, so the hot operations are in-order traversal and
// remove-by-value. A singly linked chain with a document-to-predecessor map
// gives both in constant time while preserving the original relative order.
//
// Node slots live in a Pool and are addressed by index instead of pointer.
// The free list recycles slots across the many short-lived sequences built
// during repeated interleavings, so steady-state draws allocate nothing.
//
// Neither Pool nor Sequence is safe for concurrent use. Give each goroutine
// its own Pool.
package removal

import "iter"

// none marks the end of a chain and an empty free list.
const none = -1

type node[D comparable] struct {
	doc  D
	next int32
}

// Pool is an index-referenced free list of node slots. All sequences built
// from the same pool share its backing storage.
type Pool[D comparable] struct {
	nodes []node[D]
	free  []int32
}

// NewPool creates an empty node pool.
func NewPool[D comparable]() *Pool[D] {
	return &Pool[D]{}
}

func (p *Pool[D]) take() int32 {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		return idx
	}
	p.nodes = append(p.nodes, node[D]{})
	return int32(len(p.nodes) - 1) //nolint:gosec // slot count stays far below int32 range
}

func (p *Pool[D]) release(idx int32) {
	p.nodes[idx] = node[D]{next: none} // drop the doc so the pool holds no stale references
	p.free = append(p.free, idx)
}

// Sequence tracks the surviving order of one ranked list. Built from a Pool,
// it supports O(1) append, O(1) length, O(1) remove-by-identity and in-order
// traversal of the survivors.
type Sequence[D comparable] struct {
	pool *Pool[D]
	head int32 // sentinel slot; its next is the first surviving element
	last int32
	prev map[D]int32 // doc -> slot of its predecessor
}

// NewSequence builds a sequence over pool holding docs in order. Duplicate
// documents are ignored; the first occurrence wins.
func NewSequence[D comparable](pool *Pool[D], docs []D) *Sequence[D] {
	s := &Sequence[D]{
		pool: pool,
		prev: make(map[D]int32, len(docs)),
	}
	s.head = pool.take()
	pool.nodes[s.head].next = none
	s.last = s.head

	for _, d := range docs {
		s.Append(d)
	}

	return s
}

// Append adds doc after the current last survivor. A doc already present is
// ignored.
func (s *Sequence[D]) Append(doc D) {
	if _, ok := s.prev[doc]; ok {
		return
	}

	idx := s.pool.take()
	s.pool.nodes[idx] = node[D]{doc: doc, next: none}
	s.pool.nodes[s.last].next = idx
	s.prev[doc] = s.last
	s.last = idx
}

// Len returns the number of surviving elements.
func (s *Sequence[D]) Len() int {
	return len(s.prev)
}

// Remove unlinks doc and releases its slot back to the pool. Removing an
// absent doc is a no-op.
func (s *Sequence[D]) Remove(doc D) {
	before, ok := s.prev[doc]
	if !ok {
		return
	}

	idx := s.pool.nodes[before].next
	succ := s.pool.nodes[idx].next
	s.pool.nodes[before].next = succ

	if succ == none {
		s.last = before
	} else {
		s.prev[s.pool.nodes[succ].doc] = before
	}

	delete(s.prev, doc)
	s.pool.release(idx)
}

// All yields the surviving elements in their original relative order.
func (s *Sequence[D]) All() iter.Seq[D] {
	return func(yield func(D) bool) {
		for idx := s.pool.nodes[s.head].next; idx != none; idx = s.pool.nodes[idx].next {
			if !yield(s.pool.nodes[idx].doc) {
				return
			}
		}
	}
}

// Drain releases every slot, including the head sentinel, back to the pool.
// The sequence must not be used afterwards; build a new one instead.
func (s *Sequence[D]) Drain() {
	idx := s.head
	for idx != none {
		next := s.pool.nodes[idx].next
		s.pool.release(idx)
		idx = next
	}

	clear(s.prev)
	s.head = none
	s.last = none
}
