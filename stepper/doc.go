// Package stepper realizes the Ford–Johnson merge-insertion sort (see
// package sorter) as a resumable state machine: it pauses on every
// comparison it needs and resumes once the driver supplies the answer.
//
// The batch algorithm's recursion is reified as an explicit stack of
// frames (see frameState in types.go), so that a *Stepper can sit idle
// indefinitely between Step/Answer calls with no goroutine, channel, or
// callback of its own. This is what makes the algorithm replayable: given
// a fixed n, feeding the same sequence of booleans to a fresh *Stepper via
// Answer reproduces the same sequence of emitted comparisons, the same
// comparisons-made count, and the same final order every time — there is
// no hidden state beyond the frame stack that a fresh Stepper plus an
// answer prefix does not reconstruct.
//
// Usage:
//
//	s := stepper.New(len(items))
//	for {
//		switch step := s.Step().(type) {
//		case stepper.Compare:
//			answer := oracle(items[step.A], items[step.B])
//			s.Answer(answer)
//		case stepper.Done:
//			order, _ := s.TakeOrder()
//			return order
//		}
//	}
package stepper
