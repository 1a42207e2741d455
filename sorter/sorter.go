package sorter

import "github.com/katalvlaran/fjsort/jacobsthal"

// Comparator reports whether a should rank before b. It must define a
// strict weak ordering (irreflexive, transitive, with transitive
// incomparability); behavior is undefined otherwise, though Rank can never
// crash or corrupt its internal state regardless of what Comparator
// returns.
type Comparator[T any] func(a, b T) bool

// Rank sorts items into a total order under better, using as few calls to
// better as the Ford–Johnson algorithm allows. It preserves the input
// multiset; items itself is never mutated.
//
// Rank(nil, better) and Rank of a single-element slice return the input
// unchanged without calling better.
func Rank[T any](items []T, better Comparator[T]) []T {
	n := len(items)
	if n <= 1 {
		out := make([]T, n)
		copy(out, items)
		return out
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	cmp := func(a, b int) bool { return better(items[a], items[b]) }
	sorted := fordJohnson(indices, cmp)

	out := make([]T, n)
	for pos, idx := range sorted {
		out[pos] = items[idx]
	}

	return out
}

// fordJohnson sorts a slice of element IDs using merge-insertion, per the
// algorithm documented in this package's doc comment.
func fordJohnson(elements []int, cmp func(a, b int) bool) []int {
	n := len(elements)
	if n <= 1 {
		return elements
	}

	// Step 1: pair up and compare. The loser of each pair ("main") goes
	// into the recursive step; the winner ("partner") gets a free
	// insertion later, since partner precedes main.
	numPairs := n / 2
	maxElem := 0
	for _, e := range elements {
		if e > maxElem {
			maxElem = e
		}
	}
	mains := make([]int, 0, numPairs)
	partnerOf := make([]int, maxElem+1)

	for i := 0; i < numPairs; i++ {
		a, b := elements[2*i], elements[2*i+1]
		if cmp(a, b) {
			mains = append(mains, b)
			partnerOf[b] = a
		} else {
			mains = append(mains, a)
			partnerOf[a] = b
		}
	}

	var (
		straggler    int
		hasStraggler bool
	)
	if n%2 == 1 {
		straggler, hasStraggler = elements[n-1], true
	}

	// Step 2: recursively sort the mains.
	sortedMains := fordJohnson(mains, cmp)

	// Step 3: seed the chain. partnerOf[sortedMains[0]] precedes
	// sortedMains[0], which precedes sortedMains[1], and so on, so the
	// first partner goes at the front for free.
	chain := make([]int, 0, n)
	chain = append(chain, partnerOf[sortedMains[0]])
	chain = append(chain, sortedMains...)

	// Step 4: collect the remaining partners (each bound to its main's
	// chain position) and the straggler (unbound), as pending insertions.
	type pendingEntry struct {
		elem    int
		main    int
		hasMain bool
	}
	pending := make([]pendingEntry, 0, n-len(chain)+1)
	for _, m := range sortedMains[1:] {
		pending = append(pending, pendingEntry{elem: partnerOf[m], main: m, hasMain: true})
	}
	if hasStraggler {
		pending = append(pending, pendingEntry{elem: straggler})
	}

	// Step 5: insert pending elements in Jacobsthal order so every binary
	// search operates over a prefix of size exactly 2^k-1.
	for _, idx := range jacobsthal.Order(len(pending)) {
		entry := pending[idx]
		bound := len(chain)
		if entry.hasMain {
			bound = indexOf(chain, entry.main)
		}
		pos := lowerBound(chain[:bound], entry.elem, cmp)
		chain = insertAt(chain, pos, entry.elem)
	}

	return chain
}

// indexOf returns the position of target within chain. target is always
// present by construction (it is either a just-sorted main or was seeded
// into the chain above), so this never returns -1 in practice.
func indexOf(chain []int, target int) int {
	for i, v := range chain {
		if v == target {
			return i
		}
	}
	return -1
}

// lowerBound returns the first position p in range such that
// cmp(element, range[p]) holds, i.e. the insertion point that keeps range
// sorted under cmp.
func lowerBound(rng []int, element int, cmp func(a, b int) bool) int {
	lo, hi := 0, len(rng)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(element, rng[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// insertAt inserts v at position pos in chain, shifting later elements
// right by one.
func insertAt(chain []int, pos, v int) []int {
	chain = append(chain, 0)
	copy(chain[pos+1:], chain[pos:])
	chain[pos] = v
	return chain
}
