package morph

// ProgressObserver is the engine's only collaborator. It is notified
// after every committed pass and may request a cooperative abort, which
// the engine honors at the next pass boundary.
type ProgressObserver interface {
	// Progress reports pixels changed so far against an estimated total.
	// The done value never decreases within one operation.
	Progress(done, total int)

	// Cancelled reports whether the operation should stop. A true result
	// leaves the image at the last committed pass.
	Cancelled() bool
}

// ObserverFunc adapts a callback to a ProgressObserver that never
// cancels.
type ObserverFunc func(done, total int)

func (f ObserverFunc) Progress(done, total int) { f(done, total) }
func (f ObserverFunc) Cancelled() bool          { return false }
