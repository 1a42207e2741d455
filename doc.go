// Package fjsort ranks a user-supplied list of items into a total order by
// asking the minimal number of pairwise "which is better" questions,
// using the Ford–Johnson (merge-insertion) algorithm.
//
// What is fjsort?
//
//	A small, dependency-free (beyond test tooling) library built around
//	two tightly coupled pieces:
//
//	  • A batch sorter achieving the proven Ford–Johnson minimum (or very
//	    close to it) on worst-case comparison counts for small n.
//	  • A resumable stepper realizing the same algorithm as an explicit
//	    state machine: it pauses on every comparison and resumes on the
//	    answer, and is fully replayable from just the answer history.
//
// Why choose fjsort?
//
//   - Comparison-minimal — matches the known Ford–Johnson optimum for
//     n <= 8, and estimator.Turns(n) bounds every other size.
//   - Resumable — package stepper lets any external oracle (a human, a
//     terminal prompt, a browser driven by URL-hash state) answer
//     comparisons asynchronously, one at a time.
//   - Replayable — a fresh Stepper plus a saved answer sequence
//     reconstructs the exact same run: same comparisons, same order.
//   - Pure Go — no runtime third-party dependencies; testify is a test
//     dependency only.
//
// Under the hood, everything is organized under five subpackages:
//
//	jacobsthal/ — the insertion order the merge-insertion sort relies on
//	estimator/  — an upper bound on comparisons needed for n items
//	sorter/     — the batch Ford–Johnson sort: Rank(items, better)
//	stepper/    — the resumable state machine: New/Step/Answer/TakeOrder
//	hashcode/   — the answer-history persistence format for resumable UIs
//
// and cmd/fjsort, a terminal driver that prompts interactively for each
// comparison the stepper needs.
//
// Quick example:
//
//	ranked := sorter.Rank(
//	    []string{"bbb", "a", "cc", "aa", "c"},
//	    func(a, b string) bool {
//	        return len(a) < len(b) || (len(a) == len(b) && a < b)
//	    },
//	)
//	// ranked == []string{"a", "c", "aa", "cc", "bbb"}
//
//	go get github.com/katalvlaran/fjsort
package fjsort
