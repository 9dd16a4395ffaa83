// Package fusion provides deterministic rank-fusion baselines.
//
// Interleaving experiments are usually reported against a deterministic
// merge of the same input rankings; reciprocal rank fusion (RRF) is the
// standard choice.
package fusion

import "sort"

// DefaultK is the RRF smoothing constant from the original paper.
const DefaultK = 60

// RRF merges ranked lists by reciprocal rank fusion: each document scores
// the sum of 1/(k+rank+1) over the lists it appears in, and documents are
// returned in descending score order. Ties keep first-seen order, so the
// output is fully deterministic.
//
// If k <= 0, DefaultK is used. Duplicate documents within a single list
// count once, at their first rank.
func RRF[D comparable](k int, lists ...[]D) []D {
	if k <= 0 {
		k = DefaultK
	}

	scores := make(map[D]float64)
	var order []D // first-seen order, used as the tie-break

	for _, list := range lists {
		seen := make(map[D]struct{}, len(list))
		for rank, doc := range list {
			if _, ok := seen[doc]; ok {
				continue
			}
			seen[doc] = struct{}{}

			if _, ok := scores[doc]; !ok {
				order = append(order, doc)
			}
			scores[doc] += 1.0 / float64(k+rank+1)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	return order
}
