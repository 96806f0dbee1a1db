// Package selection implements linear-time order-statistic selection
// driven by the softheap/softheap soft heap: it drains an approximately
// known number of minima from a corrupted heap to obtain a pivot whose
// rank is close to the target, partitions the input around it, and
// recurses into the side that holds the target rank.
//
// Six policies (Policy1 through Policy6) trade the heap's corruption
// parameter eps against the number of delete-min calls, based on how
// close the target rank k is to the ends or the middle of the input.
package selection
