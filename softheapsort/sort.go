package softheapsort

import "softheap/softheap"

// Sort builds a soft heap of corruption eps from xs and drains it
// completely via repeated FindMin/DeleteMin, returning the resulting
// sequence. xs is not mutated. At eps == 0 the result is guaranteed
// non-decreasing (strictly increasing when xs has no duplicates); for
// eps > 0 it is a permutation of xs with at
// most floor(eps * len(xs)) elements out of non-decreasing order.
func Sort(xs []float64, eps float64) ([]float64, error) {
	heap, err := softheap.NewSoftHeap(eps)
	if err != nil {
		return nil, err
	}

	for _, v := range xs {
		if err := heap.Insert(v); err != nil {
			return nil, err
		}
	}

	out := make([]float64, 0, len(xs))
	for !heap.IsEmpty() {
		key, err := heap.FindMin()
		if err != nil {
			return nil, err
		}
		out = append(out, key)
		if err := heap.DeleteMin(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CountInversions returns the number of indices i > 0 where xs[i] <
// xs[i-1], the measure spec.md §8's corruption-bound scenarios (S5)
// check against floor(eps * n).
func CountInversions(xs []float64) int {
	inversions := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			inversions++
		}
	}
	return inversions
}
