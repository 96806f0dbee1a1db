package softheap

import "errors"

var (
	// ErrInvalidEpsilon is returned by NewSoftHeap when eps is outside [0, 1).
	ErrInvalidEpsilon error = errors.New("softheap: eps must be in [0, 1)")
	// ErrEmptyHeap is returned by FindMin and DeleteMin on a heap with no items.
	ErrEmptyHeap error = errors.New("softheap: heap is empty")
	// ErrHeapConsumed is returned by any operation on a heap previously
	// passed to Meld as the right-hand operand.
	ErrHeapConsumed error = errors.New("softheap: heap was consumed by a meld")
)
