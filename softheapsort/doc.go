// Package softheapsort provides a degenerate soft-heap sort: building a
// soft heap from a slice and draining it via repeated FindMin/DeleteMin
// yields a non-decreasing sequence when eps == 0 (strictly increasing
// for distinct inputs), and an
// approximately sorted sequence (with at most floor(eps*n) out-of-order
// outputs) for eps > 0. It exists to exercise and regression-test the
// heap's exactness-at-eps-zero and corruption-bound properties, not as
// a general-purpose sorting routine.
package softheapsort
