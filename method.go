package interleave

// Method is the contract fulfilled by interleaving strategies: blend the
// ranked lists of competing rankers into one result and credit clicks on
// that result back to rankers.
type Method[D comparable] interface {
	// Interleave blends rankings a and b into a result of at most k documents.
	Interleave(k int, a, b []D) (*Ranking[D], error)

	// Multileave generalizes Interleave to any number of rankings.
	Multileave(k int, lists ...[]D) (*Ranking[D], error)

	// Evaluate credits clicks (position indices into r) to the contributing
	// rankers and returns the pairwise preferences.
	Evaluate(r *Ranking[D], clicks []int) ([]Outcome, error)
}

// Outcome records that one ranker collected more clicks than another in a
// single evaluation.
type Outcome struct {
	Winner int
	Loser  int
}

// evaluateClicks tallies clicks per contributing ranker and emits an Outcome
// for every unequal pair. Ties emit nothing. Pairs are visited in index
// order, so the returned slice is deterministic for a given tally.
func evaluateClicks[D comparable](r *Ranking[D], clicks []int) ([]Outcome, error) {
	counts := make([]int, r.numRankers)
	for _, pos := range clicks {
		if pos < 0 || pos >= r.Len() {
			return nil, &ErrClickOutOfRange{Position: pos, Length: r.Len()}
		}
		counts[r.rankers[pos]]++
	}

	var outcomes []Outcome
	for i := 0; i < r.numRankers; i++ {
		for j := i + 1; j < r.numRankers; j++ {
			switch {
			case counts[i] > counts[j]:
				outcomes = append(outcomes, Outcome{Winner: i, Loser: j})
			case counts[i] < counts[j]:
				outcomes = append(outcomes, Outcome{Winner: j, Loser: i})
			}
		}
	}

	return outcomes, nil
}
