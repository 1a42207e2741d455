package sorter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fjsort/sorter"
)

// TestRank_IntsAscending sorts a small slice of ints ascending.
func TestRank_IntsAscending(t *testing.T) {
	got := sorter.Rank([]int{5, 2, 9, 1, 3}, func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3, 5, 9}, got)
}

// TestRank_StringsByLengthThenLex orders strings by length, then lexically.
func TestRank_StringsByLengthThenLex(t *testing.T) {
	cmp := func(a, b string) bool {
		return len(a) < len(b) || (len(a) == len(b) && a < b)
	}
	got := sorter.Rank([]string{"bbb", "a", "cc", "aa", "c"}, cmp)
	assert.Equal(t, []string{"a", "c", "aa", "cc", "bbb"}, got)
}

// TestRank_Trivial verifies the empty and single-element cases make no
// comparisons and return the input unchanged.
func TestRank_Trivial(t *testing.T) {
	calls := 0
	counting := func(a, b int) bool { calls++; return a < b }

	assert.Empty(t, sorter.Rank([]int{}, counting))
	assert.Equal(t, []int{42}, sorter.Rank([]int{42}, counting))
	assert.Equal(t, 0, calls)
}

// TestRank_NilInput verifies Rank(nil, ...) returns an empty, non-nil slice.
func TestRank_NilInput(t *testing.T) {
	got := sorter.Rank[int](nil, func(a, b int) bool { return a < b })
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestRank_IsPermutation checks multiset equality and total ordering across
// a range of sizes, each starting from reversed order.
func TestRank_IsPermutation(t *testing.T) {
	for n := 0; n <= 9; n++ {
		items := make([]int, n)
		for i := range items {
			// A reversed starting order makes every pair comparison come out
			// false, so each pair's first element becomes the main.
			items[i] = n - 1 - i
		}
		got := sorter.Rank(items, func(a, b int) bool { return a < b })

		assert.Len(t, got, n)
		seen := make(map[int]bool, n)
		for _, v := range got {
			seen[v] = true
		}
		assert.Len(t, seen, n)

		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1], got[i])
		}
	}
}

// TestRank_WorstCaseComparisonsAreOptimal exhaustively sorts every
// permutation of [0, n) for n in [0, 8] and checks the worst-case
// comparison count against the known Ford–Johnson optimum.
func TestRank_WorstCaseComparisonsAreOptimal(t *testing.T) {
	optimal := []int{0, 0, 1, 3, 5, 7, 10, 13, 16}
	for n, want := range optimal {
		worst := 0
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		permute(items, n, func(perm []int) {
			count := 0
			cmp := func(a, b int) bool {
				count++
				return a < b
			}
			ranked := sorter.Rank(perm, cmp)
			for i := 1; i < len(ranked); i++ {
				assert.Less(t, ranked[i-1], ranked[i])
			}
			if count > worst {
				worst = count
			}
		})
		assert.Equal(t, want, worst, "n=%d", n)
	}
}

// TestRank_WorstCaseForFive pins the concrete n=5 case (120 permutations,
// max 7 comparisons) as its own test for traceability, even though it is
// subsumed by TestRank_WorstCaseComparisonsAreOptimal.
func TestRank_WorstCaseForFive(t *testing.T) {
	const n = 5
	worst := 0
	total := 0
	items := []int{0, 1, 2, 3, 4}
	permute(items, n, func(perm []int) {
		total++
		count := 0
		cmp := func(a, b int) bool {
			count++
			return a < b
		}
		sorter.Rank(perm, cmp)
		if count > worst {
			worst = count
		}
	})
	assert.Equal(t, 120, total)
	assert.Equal(t, 7, worst)
}

// permute calls f once for every permutation of the first k elements of
// items, via Heap's algorithm.
func permute(items []int, k int, f func([]int)) {
	if k <= 1 {
		f(items)
		return
	}
	permute(items, k-1, f)
	for i := 0; i < k-1; i++ {
		if k%2 == 0 {
			items[i], items[k-1] = items[k-1], items[i]
		} else {
			items[0], items[k-1] = items[k-1], items[0]
		}
		permute(items, k-1, f)
	}
}
