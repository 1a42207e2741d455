// Package stepper_test demonstrates driving a Stepper to completion.
package stepper_test

import (
	"fmt"

	"github.com/katalvlaran/fjsort/stepper"
)

// ExampleStepper drives a Stepper over five integers, answering every
// comparison with the natural ordering, and prints the resulting order.
func ExampleStepper() {
	items := []int{5, 2, 9, 1, 3}
	s := stepper.New(len(items))

	for {
		switch step := s.Step().(type) {
		case stepper.Compare:
			s.Answer(items[step.A] < items[step.B])
		case stepper.Done:
			order, _ := s.TakeOrder()
			ranked := make([]int, len(order))
			for i, idx := range order {
				ranked[i] = items[idx]
			}
			fmt.Println(ranked)
			return
		}
	}
}
