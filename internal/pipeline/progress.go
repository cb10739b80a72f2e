// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

// Sink receives a progress update after each article completes.
type Sink func(completed, total int)

// Tracker accounts for completed operations across a batch. The total is
// fixed at construction; the completed count only moves forward and never
// exceeds it.
type Tracker struct {
	completed int
	total     int
	sink      Sink
}

// NewTracker creates a Tracker for total operations, reporting updates to
// sink (which may be nil).
func NewTracker(total int, sink Sink) *Tracker {
	if total < 0 {
		total = 0
	}
	return &Tracker{total: total, sink: sink}
}

// Advance records n completed operations, clamping at the total, and
// notifies the sink.
func (t *Tracker) Advance(n int) {
	if n > 0 {
		t.completed += n
		if t.completed > t.total {
			t.completed = t.total
		}
	}
	if t.sink != nil {
		t.sink(t.completed, t.total)
	}
}

// Completed returns the number of finished operations.
func (t *Tracker) Completed() int { return t.completed }

// Total returns the fixed operation count for the batch.
func (t *Tracker) Total() int { return t.total }

// Fraction returns completed/total clamped to [0,1]. A zero-operation batch
// reports 1 so empty runs render as finished.
func (t *Tracker) Fraction() float64 {
	if t.total == 0 {
		return 1
	}
	f := float64(t.completed) / float64(t.total)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Done reports whether all operations have completed.
func (t *Tracker) Done() bool {
	return t.completed == t.total
}
