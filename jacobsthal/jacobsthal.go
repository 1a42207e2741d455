package jacobsthal

// Order returns a permutation of [0, count) giving the order in which the
// "pending" insertions of a merge-insertion sort should be applied.
//
// Element b (1-indexed within the Jacobsthal boundary sequence 1, 3, 5, 11,
// 21, 43, …) maps to pending position b-2, since pending[0] holds element 2
// (element 1, the first partner, is seeded into the chain without a
// search). Starting with (prev, curr) = (1, 3), each group emits boundary
// positions from min(curr, count+1) down to prev+1, in descending order,
// then advances (prev, curr) to (curr, curr+2*prev). Emission stops once
// count positions have been produced.
func Order(count int) []int {
	order := make([]int, 0, count)
	if count == 0 {
		return order
	}

	prev, curr := 1, 3
	for {
		top := curr
		if count+1 < top {
			top = count + 1
		}
		for b := top; b > prev; b-- {
			order = append(order, b-2)
		}
		if len(order) >= count {
			break
		}
		prev, curr = curr, curr+2*prev
	}

	return order
}
