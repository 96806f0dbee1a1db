package selection

// Observer is an optional callback protocol for external collaborators
// (a visualizer, a bench harness) that want to watch a selection run
// without influencing it. The driver calls OnInput on entry to every
// recursive step with the current (k, xs), and OnPartition after
// partitioning with (pivot, left, right); a step that reaches the base
// case of three or fewer elements returns without partitioning, so it
// calls only OnInput. Observers must not
// mutate the slices they are given; the driver hands them out directly,
// not defensive copies.
type Observer interface {
	OnInput(k int, xs []float64)
	OnPartition(pivot float64, left, right []float64)
}

// NoopObserver is the zero-cost default Observer: both methods do
// nothing. WithObserver treats a nil Observer the same as NoopObserver{}.
type NoopObserver struct{}

func (NoopObserver) OnInput(k int, xs []float64)                      {}
func (NoopObserver) OnPartition(pivot float64, left, right []float64) {}
