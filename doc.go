// Package interleave implements probabilistic interleaving for online
// ranker comparison.
//
// Interleaving blends the ranked lists of two or more competing rankers into
// a single result list shown to a user. Clicks on the blended list are then
// credited back to the ranker that contributed each position, yielding a
// pairwise preference between rankers without explicit relevance judgments.
//
// # Quick Start
//
// Create an engine and interleave two rankings:
//
//	m, err := interleave.NewProbabilistic[string](
//	    interleave.WithTau(3.0),
//	    interleave.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := m.Interleave(10, rankingA, rankingB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Credit observed clicks (positions into the blended list) back to rankers:
//
//	outcomes, err := m.Evaluate(r, clicks)
//	for _, o := range outcomes {
//	    fmt.Printf("ranker %d beat ranker %d\n", o.Winner, o.Loser)
//	}
//
// More than two rankers are compared with Multileave, which rotates through
// a random permutation of the still-active rankers each round so every
// ranker contributes at least once per completed round.
//
// # Selection Model
//
// Each position of the blended list is drawn from a randomly chosen ranker.
// Within a ranker, the document at surviving rank r is drawn with probability
// proportional to 1/r^tau; higher tau values bias selection harder toward the
// top of the list. A document chosen from one ranker is removed from every
// ranker's surviving list, so overlapping rankings never produce duplicates.
//
// The per-rank weights and cumulative probability tables depend only on
// (tau, surviving length) and are memoized for the life of the engine. Share
// tables across engines with WithDistributionCache.
//
// # Concurrency
//
// Engines are not safe for concurrent use: each call reuses the engine's
// random source and node pool. Create one engine per goroutine and share a
// DistributionCache between them; the cache itself is safe for concurrent
// use. The experiment subpackage wraps this pattern for batch runs.
package interleave
