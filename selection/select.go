package selection

import (
	"math"
	"sort"

	"softheap/softheap"
)

// Select returns the k-th smallest (1-indexed) value of xs using the
// given policy and a default, non-reproducible source of randomness.
// For reproducible runs, or to attach an Observer, construct a
// Selector directly with NewSelector.
func Select(k int, xs []float64, policy Policy) (float64, error) {
	s, err := NewSelector(policy, nil)
	if err != nil {
		return 0, err
	}
	return s.Select(k, xs)
}

// Select returns the k-th smallest (1-indexed) value of xs. xs is
// treated as read-only; Select copies what it needs to mutate.
func (s *Selector) Select(k int, xs []float64) (float64, error) {
	if k < 1 || k > len(xs) {
		return 0, ErrInvalidRank
	}
	return s.selectRec(k, xs)
}

func (s *Selector) selectRec(k int, xs []float64) (float64, error) {
	s.observer.OnInput(k, xs)

	n := len(xs)
	if n <= 3 {
		sorted := make([]float64, n)
		copy(sorted, xs)
		sort.Float64s(sorted)
		return sorted[k-1], nil
	}

	p := derivePlan(s.policy, k, n)

	var pivot float64
	switch {
	case p.randomPivot:
		pivot = s.randomElement(xs)
	case p.buildHeap:
		var err error
		pivot, err = s.drainPivot(xs, n, p)
		if err != nil {
			return 0, err
		}
	default:
		// Every policy produces either randomPivot or buildHeap; this
		// branch exists only to fail loudly if that invariant breaks.
		panic("selection: policy produced neither a heap build nor a random pivot")
	}

	left, right := partition(pivot, xs)
	s.observer.OnPartition(pivot, left, right)

	switch {
	case len(left) == k-1:
		return pivot, nil
	case len(left) >= k:
		return s.selectRec(k, left)
	default:
		return s.selectRec(k-len(left)-1, right)
	}
}

// drainPivot builds a soft heap per plan, drains p.deleteMinCalls
// items from it, and returns the maximum key observed (spec.md §4.F
// step 1).
func (s *Selector) drainPivot(xs []float64, n int, p plan) (float64, error) {
	input := xs
	if p.maxHeap {
		negated := make([]float64, len(xs))
		for i, v := range xs {
			negated[i] = -v
		}
		input = negated
	}
	if p.sample {
		input = s.sampleWithoutReplacement(input, sampleSize(n))
	}

	heap, err := softheap.NewSoftHeap(p.eps)
	if err != nil {
		return 0, err
	}
	for _, v := range input {
		if err := heap.Insert(v); err != nil {
			return 0, err
		}
	}

	maxSeen := math.Inf(-1)
	for i := 0; i < p.deleteMinCalls && !heap.IsEmpty(); i++ {
		key, err := heap.FindMin()
		if err != nil {
			return 0, err
		}
		if err := heap.DeleteMin(); err != nil {
			return 0, err
		}
		if key > maxSeen {
			maxSeen = key
		}
	}

	if p.maxHeap {
		maxSeen = -maxSeen
	}
	return maxSeen, nil
}

// partition splits xs around pivot into the strictly-less and
// strictly-greater subsets, discarding occurrences equal to pivot.
func partition(pivot float64, xs []float64) (left, right []float64) {
	for _, v := range xs {
		switch {
		case v < pivot:
			left = append(left, v)
		case v > pivot:
			right = append(right, v)
		}
	}
	return left, right
}
