package selection

import (
	"math/rand"
	"time"
)

// Selector runs the selection driver for a fixed policy. Its
// randomness (used only by Policy5's sampling step and Policy6's
// random-pivot step) is supplied by an explicit *rand.Rand rather than
// a package-level swappable generator, so that two Selectors can be
// used independently and deterministically from the same process; see
// DESIGN.md's Open Questions for why this departs from the teacher's
// package-variable injection idiom.
type Selector struct {
	policy   Policy
	rng      *rand.Rand
	observer Observer
}

// NewSelector builds a Selector for the given policy. rng may be nil,
// in which case a generator seeded from the current time is used; pass
// an explicit rand.New(rand.NewSource(seed)) for reproducible runs.
// The new Selector has a NoopObserver; attach one with WithObserver.
func NewSelector(policy Policy, rng *rand.Rand) (*Selector, error) {
	if !policy.valid() {
		return nil, ErrUnknownPolicy
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{policy: policy, rng: rng, observer: NoopObserver{}}, nil
}

// WithObserver attaches an Observer to s and returns s for chaining.
func (s *Selector) WithObserver(obs Observer) *Selector {
	if obs == nil {
		obs = NoopObserver{}
	}
	s.observer = obs
	return s
}

// sampleWithoutReplacement draws m distinct elements from xs uniformly
// without replacement, using a partial Fisher-Yates shuffle over a
// scratch copy so the caller's slice is never mutated.
func (s *Selector) sampleWithoutReplacement(xs []float64, m int) []float64 {
	if m >= len(xs) {
		out := make([]float64, len(xs))
		copy(out, xs)
		return out
	}

	scratch := make([]float64, len(xs))
	copy(scratch, xs)

	for i := 0; i < m; i++ {
		j := i + s.rng.Intn(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:m]
}

// randomElement returns a uniformly random element of xs.
func (s *Selector) randomElement(xs []float64) float64 {
	return xs[s.rng.Intn(len(xs))]
}
