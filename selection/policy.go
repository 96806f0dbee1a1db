package selection

import "math"

// Policy selects one of six strategies for choosing the soft heap's
// corruption parameter eps and the number of delete-min calls used to
// produce a selection pivot, as a function of the target rank's
// position in the input.
type Policy int

const (
	// Policy1 is the Chazelle baseline: a constant eps = 1/3 and
	// floor(n/3) delete-min calls, independent of k.
	Policy1 Policy = iota + 1
	// Policy2 holds delete-min calls constant at floor(n/3) and tunes
	// eps to the target rank's fraction r = k/n.
	Policy2
	// Policy3 tunes both delete-min calls and eps to r, using a coarser
	// heap drain the closer r is to the tail of the input.
	Policy3
	// Policy4 mirrors the problem onto a max-heap when r > 1/2, so the
	// heap always drains from the shorter end.
	Policy4
	// Policy5 additionally samples a ceil(n/5)-element subset of the
	// input before building the heap, when the mirrored rank fraction
	// is not too close to either end.
	Policy5
	// Policy6 falls back to a uniformly random pivot (no heap at all)
	// when the mirrored rank fraction is not too close to either end,
	// and otherwise behaves like Policy4 restricted to the near end.
	Policy6
)

func (p Policy) valid() bool {
	return p >= Policy1 && p <= Policy6
}

// plan is the fully derived set of choices Select needs to act on for
// one recursive step, given a policy, n = len(xs) and the target k.
type plan struct {
	buildHeap      bool
	maxHeap        bool
	sample         bool
	deleteMinCalls int
	eps            float64
	// randomPivot is set only by Policy6 when r_h >= 1/3: no heap is
	// built at all, and Select must draw a pivot uniformly from xs.
	randomPivot bool
}

// clampFloor enforces spec.md §4.F's "every floor must be clamped to
// >= 1" rule.
func clampFloor(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// derivePlan computes the policy table of spec.md §4.F for the given
// policy, target rank k and input size n.
func derivePlan(p Policy, k, n int) plan {
	r := float64(k) / float64(n)

	switch p {
	case Policy1:
		return plan{
			buildHeap:      true,
			deleteMinCalls: clampFloor(n / 3),
			eps:            1.0 / 3.0,
		}

	case Policy2:
		eps := 1.0 / 10.0
		if r >= 1.0/3.0 {
			eps = r - 1.0/3.0
		}
		return plan{
			buildHeap:      true,
			deleteMinCalls: clampFloor(n / 3),
			eps:            eps,
		}

	case Policy3:
		var dmc int
		var eps float64
		switch {
		case r >= 2.0/3.0:
			dmc = clampFloor((2 * n) / 3)
			eps = r - 2.0/3.0
		case r >= 1.0/3.0:
			dmc = clampFloor(n / 3)
			eps = r - 1.0/3.0
		default:
			dmc = clampFloor(k)
			eps = r
		}
		return plan{
			buildHeap:      true,
			deleteMinCalls: dmc,
			eps:            eps,
		}

	case Policy4:
		maxHeap := r > 0.5
		kH, rH := mirror(k, n, maxHeap)
		dmc, eps := mirrorDrain(kH, rH, n)
		return plan{
			buildHeap:      true,
			maxHeap:        maxHeap,
			deleteMinCalls: dmc,
			eps:            eps,
		}

	case Policy5:
		maxHeap := r > 0.5
		kH, rH := mirror(k, n, maxHeap)
		sample := rH >= 1.0/3.0
		var dmc int
		var eps float64
		if sample {
			dmc = clampFloor(n / 15)
			eps = rH - 1.0/6.0
		} else {
			dmc = clampFloor(kH)
			eps = rH
		}
		return plan{
			buildHeap:      true,
			maxHeap:        maxHeap,
			sample:         sample,
			deleteMinCalls: dmc,
			eps:            eps,
		}

	case Policy6:
		maxHeap := r > 0.5
		kH, rH := mirror(k, n, maxHeap)
		if rH >= 1.0/3.0 {
			return plan{
				buildHeap:   false,
				maxHeap:     maxHeap,
				randomPivot: true,
			}
		}
		return plan{
			buildHeap:      true,
			maxHeap:        maxHeap,
			deleteMinCalls: clampFloor(kH),
			eps:            rH,
		}

	default:
		return plan{}
	}
}

// mirror applies spec.md §4.F's Mirror rule: when maxHeap is true the
// problem is restated as finding the (n-k+1)-th smallest of the
// negated input, i.e. the k_h-th largest of the original.
func mirror(k, n int, maxHeap bool) (kH int, rH float64) {
	if !maxHeap {
		return k, float64(k) / float64(n)
	}
	kH = n - k + 1
	return kH, float64(kH) / float64(n)
}

// mirrorDrain implements the delete_min_calls/eps half of Policy4's
// Mirror rule, shared with Policy4 proper.
func mirrorDrain(kH int, rH float64, n int) (dmc int, eps float64) {
	if rH >= 1.0/3.0 {
		return clampFloor(n / 3), rH - 1.0/3.0
	}
	return clampFloor(kH), rH
}

// sampleSize is ceil(n/5), the subset size Policy5 draws before
// building its heap.
func sampleSize(n int) int {
	return int(math.Ceil(float64(n) / 5.0))
}
