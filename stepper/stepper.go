package stepper

import "github.com/katalvlaran/fjsort/jacobsthal"

// Stepper is a resumable realization of the Ford–Johnson sort. A zero
// Stepper is not usable; construct one with New.
type Stepper struct {
	stack       []*frame
	pending     *pendingRecord
	comparisons int
	done        []int
	isDone      bool
	taken       bool
}

// New constructs a Stepper over n items (indices 0..n-1). If n <= 1 the
// Stepper starts Done with the trivial identity order.
func New(n int) *Stepper {
	if n <= 1 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		return &Stepper{done: order, isDone: true}
	}

	elements := make([]int, n)
	for i := range elements {
		elements[i] = i
	}

	return &Stepper{stack: []*frame{newFrame(elements)}}
}

// Step returns the current step: Compare, naming the next required
// comparison, or Done. It is idempotent — calling it repeatedly without an
// intervening Answer returns the same value.
func (s *Stepper) Step() Step {
	if step, ok := s.pendingStep(); ok {
		return step
	}

	for {
		if s.isDone {
			return Done{}
		}
		if len(s.stack) == 0 {
			s.done = []int{}
			s.isDone = true
			return Done{}
		}
		if s.popDoneFrame() {
			continue
		}
		if step, emitted := s.advanceFrame(); emitted {
			return step
		}
	}
}

// Answer applies the reply to the pending comparison and advances until a
// new comparison is needed or the sort completes. If nothing is pending,
// Answer is a no-op that returns the current Step.
func (s *Stepper) Answer(betterIsA bool) Step {
	pending := s.pending
	if pending == nil {
		return s.Step()
	}
	s.pending = nil
	s.comparisons++

	switch pending.kind {
	case pendingPairing:
		s.applyPairingAnswer(betterIsA)
	case pendingSearch:
		s.applySearchAnswer(betterIsA)
	default:
		invariantf("stepper: pending record has unknown kind %d", pending.kind)
	}

	return s.Step()
}

// TakeOrder moves the final permutation out of a Done Stepper. It returns
// (nil, false) if the sort has not finished, or on a second call.
func (s *Stepper) TakeOrder() ([]int, bool) {
	if !s.isDone || s.taken {
		return nil, false
	}
	s.taken = true
	order := s.done
	s.done = nil
	return order, true
}

// ComparisonsMade returns the cumulative number of answers accepted.
func (s *Stepper) ComparisonsMade() int {
	return s.comparisons
}

func (s *Stepper) top() *frame {
	return s.stack[len(s.stack)-1]
}

func (s *Stepper) pendingStep() (Step, bool) {
	if s.pending == nil {
		return nil, false
	}
	return Compare{A: s.pending.a, B: s.pending.b}, true
}

func (s *Stepper) applyPairingAnswer(betterIsA bool) {
	fr := s.top()
	ps, ok := fr.state.(*statePairing)
	if !ok {
		invariantf("stepper: pairing answer applied to non-pairing frame state")
	}

	a := fr.elements[2*ps.i]
	b := fr.elements[2*ps.i+1]
	if betterIsA {
		ps.mains = append(ps.mains, b)
		ps.partnerOf[b] = a
	} else {
		ps.mains = append(ps.mains, a)
		ps.partnerOf[a] = b
	}
	ps.i++
}

func (s *Stepper) applySearchAnswer(betterIsA bool) {
	fr := s.top()
	is, ok := fr.state.(*stateInsert)
	if !ok {
		invariantf("stepper: search answer applied to non-insert frame state")
	}
	if is.search == nil || !is.search.hasMid {
		invariantf("stepper: search answer applied with no active search")
	}

	mid := is.search.mid
	is.search.hasMid = false
	if betterIsA {
		is.search.hi = mid
	} else {
		is.search.lo = mid + 1
	}

	if is.search.lo == is.search.hi {
		pos := is.search.lo
		elem := is.search.elem
		is.chain = insertAt(is.chain, pos, elem)
		is.search = nil
		is.orderIdx++
	}
}

// popDoneFrame pops the top frame if it is Done, propagating its result to
// the parent (or finishing the whole sort if there is no parent). It
// reports whether it popped a frame, so the Step loop can continue.
func (s *Stepper) popDoneFrame() bool {
	done, ok := s.top().state.(*stateDone)
	if !ok {
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.propagateResult(done.result)
	return true
}

// advanceFrame advances the top frame by one micro-step. This may emit a
// Compare (setting s.pending), push a new child frame, or change the top
// frame's state without emitting anything.
func (s *Stepper) advanceFrame() (Step, bool) {
	top := s.top()
	switch st := top.state.(type) {
	case *stateStart:
		top.state = advanceStart(top.elements)
		return nil, false

	case *statePairing:
		if st.i < st.numPairs {
			a := top.elements[2*st.i]
			b := top.elements[2*st.i+1]
			s.pending = &pendingRecord{kind: pendingPairing, a: a, b: b}
			return Compare{A: a, B: b}, true
		}
		top.state = &stateAwaitMains{
			partnerOf:    st.partnerOf,
			straggler:    st.straggler,
			hasStraggler: st.hasStraggler,
		}
		s.stack = append(s.stack, newFrame(st.mains))
		return nil, false

	case *stateAwaitMains:
		invariantf("stepper: advanced a frame awaiting its child's result")
		return nil, false

	case *stateInsert:
		return s.advanceInsert(st)

	case *stateDone:
		// popDoneFrame handles Done frames; reaching here means the Step
		// loop's frame-stack invariant was violated.
		invariantf("stepper: advanceFrame reached an already-done frame")
		return nil, false

	default:
		invariantf("stepper: frame has unknown state %T", st)
		return nil, false
	}
}

func advanceStart(elements []int) frameState {
	n := len(elements)
	if n <= 1 {
		result := make([]int, n)
		copy(result, elements)
		return &stateDone{result: result}
	}

	numPairs := n / 2
	maxElem := 0
	for _, e := range elements {
		if e > maxElem {
			maxElem = e
		}
	}

	straggler, hasStraggler := 0, false
	if n%2 == 1 {
		straggler, hasStraggler = elements[n-1], true
	}

	return &statePairing{
		i:            0,
		numPairs:     numPairs,
		mains:        make([]int, 0, numPairs),
		partnerOf:    make([]int, maxElem+1),
		straggler:    straggler,
		hasStraggler: hasStraggler,
	}
}

func (s *Stepper) advanceInsert(st *stateInsert) (Step, bool) {
	if st.orderIdx >= len(st.order) {
		s.top().state = &stateDone{result: st.chain}
		return nil, false
	}

	if st.search == nil {
		idx := st.order[st.orderIdx]
		entry := st.pending[idx]
		bound := len(st.chain)
		if entry.hasMain {
			bound = indexOf(st.chain, entry.main)
			if bound < 0 {
				invariantf("stepper: main %d not found in chain", entry.main)
			}
		}
		st.search = &searchState{elem: entry.elem, lo: 0, hi: bound}
	}

	if st.search.lo == st.search.hi {
		pos := st.search.lo
		elem := st.search.elem
		st.chain = insertAt(st.chain, pos, elem)
		st.search = nil
		st.orderIdx++
		return nil, false
	}

	mid := st.search.lo + (st.search.hi-st.search.lo)/2
	st.search.mid = mid
	st.search.hasMid = true
	a, b := st.search.elem, st.chain[mid]
	s.pending = &pendingRecord{kind: pendingSearch, a: a, b: b}
	return Compare{A: a, B: b}, true
}

// propagateResult hands a finished child frame's result up to its parent's
// AwaitMains state, building the parent's initial chain and pending list
// and transitioning it to Insert. If there is no parent, result is the
// overall sort output.
func (s *Stepper) propagateResult(result []int) {
	if len(s.stack) == 0 {
		s.done = result
		s.isDone = true
		return
	}

	parent := s.top()
	am, ok := parent.state.(*stateAwaitMains)
	if !ok {
		invariantf("stepper: result propagated to a non-AwaitMains parent frame")
	}

	chain := make([]int, 0, len(parent.elements))
	chain = append(chain, am.partnerOf[result[0]])
	chain = append(chain, result...)

	pending := make([]pendingEntry, 0, len(result))
	for _, m := range result[1:] {
		pending = append(pending, pendingEntry{elem: am.partnerOf[m], main: m, hasMain: true})
	}
	if am.hasStraggler {
		pending = append(pending, pendingEntry{elem: am.straggler})
	}

	parent.state = &stateInsert{
		chain:    chain,
		pending:  pending,
		order:    jacobsthal.Order(len(pending)),
		orderIdx: 0,
	}
}

func indexOf(chain []int, target int) int {
	for i, v := range chain {
		if v == target {
			return i
		}
	}
	return -1
}

func insertAt(chain []int, pos, v int) []int {
	chain = append(chain, 0)
	copy(chain[pos+1:], chain[pos:])
	chain[pos] = v
	return chain
}
