package softheap

// The root list alternates between two orderings depending on which
// operation last touched it: findable order (head has minimum key,
// used by find-min/delete-min) and meldable order (strictly increasing
// rank, used by insert/meld). rankSwap and keySwap convert the head
// between the two in O(1); reorder, meldableInsert and meldableMeld
// walk the rest of the list recursively.

// rankSwap swaps H and H.next if H.next has the smaller rank, and
// returns the new head. It converts a findable head into a meldable one.
func rankSwap(h *node) *node {
	x := h.next
	if h.rank <= x.rank {
		return h
	}
	h.next = x.next
	x.next = h
	return x
}

// keySwap swaps H and H.next if H.next has the smaller key, and
// returns the new head. It converts a meldable head into a findable one.
func keySwap(h *node) *node {
	x := h.next
	if h.key <= x.key {
		return h
	}
	h.next = x.next
	x.next = h
	return x
}

// reorder restores findable order after a delete-min that may have
// worsened the key of the root of rank k: it rank-swaps the head past
// every sibling of smaller rank, then key-swaps on the way back to
// settle the head by key.
func reorder(h *node, k int) *node {
	if h.next.rank < k {
		h = rankSwap(h)
		h.next = reorder(h.next, k)
	}
	return keySwap(h)
}

// meldableInsert inserts the single root x into the meldable list h,
// linking x with h's head when their ranks collide.
func meldableInsert(x, h *node, threshold int) *node {
	if x.rank < h.rank {
		x.next = keySwap(h)
		return x
	}
	return meldableInsert(link(x, h, threshold), rankSwap(h.next), threshold)
}

// meldableMeld merges two meldable root lists by increasing rank,
// carrying a link forward whenever ranks collide.
func meldableMeld(h1, h2 *node, threshold int) *node {
	if h1.rank > h2.rank {
		h1, h2 = h2, h1
	}
	if h2 == nilNode {
		return h1
	}
	return meldableInsert(h1, meldableMeld(rankSwap(h1.next), h2, threshold), threshold)
}
