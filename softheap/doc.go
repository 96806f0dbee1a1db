// Package softheap implements the soft heap of Kaplan, Tarjan and Zwick
// ("Soft Heaps Simplified"): a meldable priority queue that trades
// amortized O(1) insertion and O(log(1/eps)) deletion for a bounded
// corruption rate. At any instant no more than an eps fraction of the
// items currently in the heap have had their reported key raised above
// their true inserted key.
//
// The heap is a root list of binomial-like trees. Each internal node
// carries a single working key no greater than its children's keys and
// a ring of items whose true keys are all <= that working key.
// Deleting the minimum drains one item from the minimum-key root and,
// when that root runs dry, refills it from its subtree via fill/defill,
// occasionally corrupting a batch of items in the process.
//
// This package has no I/O and is not safe for concurrent use: a heap is
// owned by a single caller, and Meld consumes its right-hand operand.
package softheap
