// Package sorter implements a batch Ford–Johnson (merge-insertion) sort: a
// comparison sort achieving the best known worst-case comparison counts for
// small n.
//
// Algorithm (one recursive level over n elements):
//
//  1. Pair elements into n/2 pairs; one comparison per pair decides the
//     "main" (loser, recursed on) and the "partner" (winner, inserted
//     later for free). An odd element is kept aside as the straggler.
//  2. Recurse on the mains.
//  3. Seed a chain with the first sorted main's partner, followed by the
//     sorted mains.
//  4. Collect the remaining partners (each bound to the position of its
//     main) and the straggler (unbound) as pending insertions.
//  5. Insert pending elements in Jacobsthal order (see package jacobsthal),
//     binary-searching each one into the chain prefix up to its bound.
//
// Complexity:
//
//   - Comparisons: matches package estimator's Turns(n) in the worst case,
//     and the proven Ford–Johnson optimum for n <= 8.
//   - Time: O(n log n) element moves plus O(Turns(n)) comparator calls.
//   - Space: O(n) aggregate across all recursive levels.
package sorter
