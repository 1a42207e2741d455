// Package estimator computes an upper bound on the number of comparisons
// the Ford–Johnson sort in package sorter (or its resumable counterpart in
// package stepper) may need for n items.
//
// The bound assumes every binary search performed during insertion walks
// the worst-case (longest possible) prefix; actual comparison counts
// depend on the comparator's answers and can be lower, but never higher
// than Turns(n).
package estimator
