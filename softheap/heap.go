package softheap

import "math"

// SoftHeap is a mergeable priority queue that corrupts at most an eps
// fraction of its items at any instant, in exchange for amortized O(1)
// insertion and O(log(1/eps)) deletion. The zero value is not usable;
// construct one with NewSoftHeap.
//
// A SoftHeap is owned by a single caller and is not safe for concurrent
// use. Meld consumes its argument: after a.Meld(b), b must not be used
// again.
type SoftHeap struct {
	eps       float64
	threshold int
	root      *node
	count     int
	consumed  bool
}

// NewSoftHeap constructs an empty soft heap with corruption parameter
// eps. eps must be in [0, 1); eps == 0 degenerates to an exact min-heap
// (threshold T = +infinity, so the double-even rule never fires).
func NewSoftHeap(eps float64) (*SoftHeap, error) {
	if eps < 0 || eps >= 1 {
		return nil, ErrInvalidEpsilon
	}

	threshold := math.MaxInt
	if eps > 0 {
		threshold = int(math.Ceil(math.Log2(3 / eps)))
	}

	return &SoftHeap{
		eps:       eps,
		threshold: threshold,
		root:      nilNode,
	}, nil
}

// IsEmpty reports whether the heap holds no items.
func (h *SoftHeap) IsEmpty() bool {
	return h.count == 0
}

// Len returns the number of items currently in the heap.
func (h *SoftHeap) Len() int {
	return h.count
}

// Insert adds one item with the given key to the heap in amortized
// O(1) time.
func (h *SoftHeap) Insert(key float64) error {
	if h.consumed {
		return ErrHeapConsumed
	}

	x := newRoot(key)
	h.root = keySwap(meldableInsert(x, rankSwap(h.root), h.threshold))
	h.count++
	return nil
}

// FindMin returns the original key of the item that the next DeleteMin
// would remove, in amortized O(1) time. It does not mutate the heap.
// This is the first item of the heap's minimum-key root's ring, not
// necessarily equal to that root's (possibly corrupted) working key.
func (h *SoftHeap) FindMin() (float64, error) {
	if h.consumed {
		return 0, ErrHeapConsumed
	}
	if h.IsEmpty() {
		return 0, ErrEmptyHeap
	}
	return h.root.first().key, nil
}

// DeleteMin removes one item from the heap's minimum-key root, in
// amortized O(log(1/eps)) time. The removed item's original key is not
// returned; callers that need it should call FindMin first.
func (h *SoftHeap) DeleteMin() error {
	if h.consumed {
		return ErrHeapConsumed
	}
	if h.IsEmpty() {
		return ErrEmptyHeap
	}

	head := h.root
	if hasMoreThanOne(head.set) {
		head.wireOutFirst()
	} else {
		head.set = nil
		k := head.rank
		if head.isLeaf() {
			head = head.next
		} else {
			defill(head, h.threshold)
		}
		head = reorder(head, k)
	}

	h.root = head
	h.count--
	return nil
}

// Meld absorbs every item of other into h, in O(log n) time. other is
// emptied and must not be used again; any subsequent call on it returns
// ErrHeapConsumed. h and other must have been built with the same eps.
func (h *SoftHeap) Meld(other *SoftHeap) error {
	if h.consumed || other.consumed {
		return ErrHeapConsumed
	}

	h.root = keySwap(meldableMeld(rankSwap(h.root), rankSwap(other.root), h.threshold))
	h.count += other.count

	other.root = nilNode
	other.count = 0
	other.consumed = true
	return nil
}
