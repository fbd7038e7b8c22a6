package motion

import (
	"fmt"
	"sync"

	"github.com/openpup/go-pup/pkg/actuator"
)

// item is one queued frame with its requested execution speed.
type item struct {
	frame Frame
	speed float64
}

// Buffer is the FIFO of pending angle frames for exactly one body
// region. All mutation is serialized by the buffer's own mutex; there
// is no cross-region locking. Created once per region at startup and
// lives until shutdown.
type Buffer struct {
	region actuator.Region

	mu    sync.Mutex
	items []item

	// gen increments on every Clear so an executor mid-frame can tell
	// its frame was cancelled.
	gen uint64

	// busy marks a frame handed out by PopNext and not yet finished,
	// so idleness can be judged under the same mutex as the pop.
	busy bool

	// wake carries at most one pending signal for the executor.
	wake chan struct{}
}

// NewBuffer creates the buffer for a region.
func NewBuffer(region actuator.Region) *Buffer {
	return &Buffer{
		region: region,
		wake:   make(chan struct{}, 1),
	}
}

// Region returns the buffer's body region.
func (b *Buffer) Region() actuator.Region { return b.region }

// Push enqueues frames at the tail. With replace=true pending frames
// are atomically discarded first ("execute immediately" semantics).
// A frame whose length does not match the region rejects the whole
// push and leaves the buffer unchanged.
func (b *Buffer) Push(frames []Frame, replace bool, speed float64) error {
	for _, f := range frames {
		if !validFrame(b.region, f) {
			return fmt.Errorf("%w: region %s wants %d angles, got %d",
				ErrMalformedFrame, b.region, b.region.FrameSize(), len(f))
		}
	}

	speed = clampSpeed(speed)
	items := make([]item, len(frames))
	for i, f := range frames {
		cp := make(Frame, len(f))
		copy(cp, f)
		items[i] = item{frame: cp, speed: speed}
	}

	b.mu.Lock()
	if replace {
		b.items = b.items[:0]
		b.gen++
	}
	b.items = append(b.items, items...)
	b.mu.Unlock()

	b.signal()
	return nil
}

// PopNext dequeues the next frame, or reports false when empty. A
// successful pop marks the buffer busy until Done is called, so the
// frame never disappears from Idle's view while it executes.
func (b *Buffer) PopNext() (Frame, float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return nil, 0, false
	}
	next := b.items[0]
	b.items = b.items[1:]
	b.busy = true
	return next.frame, next.speed, true
}

// Done marks the frame returned by the last PopNext as finished,
// whether it ran to completion or was abandoned.
func (b *Buffer) Done() {
	b.mu.Lock()
	b.busy = false
	b.mu.Unlock()
}

// Idle reports whether no frames are pending and no popped frame is
// still executing.
func (b *Buffer) Idle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.busy && len(b.items) == 0
}

// Clear discards all pending frames. A frame already being executed is
// not rolled back; the executor notices the generation change and
// stops emitting after its current tick.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.items = b.items[:0]
	b.gen++
	b.mu.Unlock()
}

// Len returns the number of pending frames.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// IsEmpty reports whether no frames are pending.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Generation returns the clear-generation counter.
func (b *Buffer) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen
}

// signal wakes the executor without ever blocking the pusher.
func (b *Buffer) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Wake exposes the executor's wake channel.
func (b *Buffer) Wake() <-chan struct{} { return b.wake }
