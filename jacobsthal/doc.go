// Package jacobsthal computes the insertion order used by the Ford–Johnson
// (merge-insertion) sort.
//
// The Jacobsthal numbers J_0=0, J_1=1, J_{k+1}=J_k+2*J_{k-1} give rise to a
// boundary sequence b_k = J_{k+2}: 1, 3, 5, 11, 21, 43, 85, … . Ford–Johnson
// inserts the "pending" partners of a merge-insertion sort in descending
// order within each boundary group, so that every binary search that
// follows operates over a prefix of size exactly 2^k-1 and never wastes a
// comparison.
//
// Complexity:
//
//   - Time:  O(count) — each group is emitted once, and total group sizes
//     sum to count.
//   - Space: O(count) for the returned slice.
package jacobsthal
