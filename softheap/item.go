package softheap

// item is one inserted key, arranged into a circular ring with its
// node-mates. The node that owns a ring points at its tail, so that
// tail.next is always the ring's first item.
type item struct {
	key  float64
	next *item
}

// singleton returns a one-element ring: it is its own tail and its own
// next, satisfying item.next == item.
func singleton(key float64) *item {
	it := &item{key: key}
	it.next = it
	return it
}

// spliceInto merges two non-empty rings into one in O(1) by swapping
// the two tails' next pointers, and returns the tail of the combined
// ring (arbitrarily, a's tail). Both a and b must be non-nil.
func spliceInto(a, b *item) *item {
	a.next, b.next = b.next, a.next
	return a
}

// peekFirst returns the first item of the ring whose tail is t.
func peekFirst(t *item) *item {
	return t.next
}

// wireOutFirst advances t's first-item pointer past the current first
// item, removing it from the ring in O(1).
func wireOutFirst(t *item) *item {
	t.next = t.next.next
	return t
}

// hasMoreThanOne reports whether the ring whose tail is t holds more
// than one item.
func hasMoreThanOne(t *item) bool {
	return t.next != t.next.next
}
