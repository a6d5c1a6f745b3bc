// Package progress provides concrete progress sinks for the engine.
package progress

import (
	"sync/atomic"

	"github.com/iamNilotpal/fsum/internal/core/domain"
)

// Tracker is a thread-safe progress sink. The engine pushes byte counts
// into it after every chunk; a presentation layer polls Snapshot (or
// Fraction) at whatever cadence it wants.
type Tracker struct {
	done  atomic.Uint64
	total atomic.Uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Publish records the latest byte counts. Counts are published in read
// order, so done is monotonically non-decreasing within one run.
func (t *Tracker) Publish(bytesDone, bytesTotal uint64) {
	t.total.Store(bytesTotal)
	t.done.Store(bytesDone)
}

// Snapshot returns the most recently published progress state.
func (t *Tracker) Snapshot() domain.ProgressState {
	return domain.ProgressState{
		BytesDone:  t.done.Load(),
		BytesTotal: t.total.Load(),
	}
}

// Fraction returns completion in [0, 1] based on the last publish.
func (t *Tracker) Fraction() float64 {
	return t.Snapshot().Fraction()
}

// Nop is a sink that drops every update.
type Nop struct{}

func (Nop) Publish(bytesDone, bytesTotal uint64) {}
