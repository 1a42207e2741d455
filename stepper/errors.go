package stepper

import "fmt"

// StepperError reports an internal invariant violation: a frame-stack
// state that construction should make unreachable (for example, an Insert
// frame with no active search and no remaining order entries, or an
// Answer applied against a pending record whose owning frame is no longer
// the kind it claims to be). Seeing one means this package has a bug, not
// that the driver or comparator misbehaved.
type StepperError struct {
	msg string
}

func (e *StepperError) Error() string { return e.msg }

// invariantf panics with a *StepperError built from format/args.
func invariantf(format string, args ...any) {
	panic(&StepperError{msg: fmt.Sprintf(format, args...)})
}
