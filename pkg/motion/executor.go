package motion

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/openpup/go-pup/internal/log"
	"github.com/openpup/go-pup/pkg/actuator"
)

// Tick is the fixed emission cadence.
const Tick = 10 * time.Millisecond

// Frame duration as a linear function of speed: speed 0 is slowest,
// 100 fastest. The per-region rate clamp is applied on top.
const (
	durationBase  = 500 * time.Millisecond
	durationSlope = 4500 * time.Microsecond // per speed unit
)

// Writer delivers one wire angle to one servo. The transport behind it
// (serial bus, PWM board) is an external collaborator; writes are
// assumed fast relative to the tick.
type Writer interface {
	Write(id int, angle float64) error
}

// Sink observes every emitted angle vector. Used for telemetry; may be
// nil.
type Sink func(region actuator.Region, angles []float64)

// FrameDuration computes how long a frame takes to execute: the linear
// speed law, floored so that the largest joint delta in the frame never
// exceeds the region's maximum angular rate, and never below one tick.
func FrameDuration(speed, maxDelta, maxRate float64) time.Duration {
	d := durationBase - time.Duration(clampSpeed(speed))*durationSlope

	if maxRate > 0 {
		floor := time.Duration(maxDelta / maxRate * float64(time.Second))
		if d < floor {
			d = floor
		}
	}
	if d < Tick {
		d = Tick
	}
	return d
}

// Executor drains one region's buffer for the life of the process. It
// interpolates each frame from the last-commanded angles over a
// speed-and-rate-bounded duration, emitting one write per joint per
// tick. When the buffer is empty it parks on the wake channel; there
// is no busy-spin.
type Executor struct {
	region actuator.Region
	joints []actuator.Joint
	buf    *Buffer
	writer Writer

	mu   sync.Mutex
	last []float64 // last-commanded logical angles
	sink Sink

	writeFails atomic.Uint64
}

// NewExecutor creates the executor for one region. Joints must be in
// frame order.
func NewExecutor(region actuator.Region, joints []actuator.Joint, buf *Buffer, writer Writer) *Executor {
	return &Executor{
		region: region,
		joints: joints,
		buf:    buf,
		writer: writer,
		last:   make([]float64, region.FrameSize()),
	}
}

// SetSink installs a telemetry sink. Pass nil to remove it.
func (e *Executor) SetSink(sink Sink) {
	e.mu.Lock()
	e.sink = sink
	e.mu.Unlock()
}

// Run is the worker loop. It returns when ctx is cancelled.
func (e *Executor) Run(ctx context.Context) {
	log.Debug("executor started", "region", e.region)
	for {
		for {
			frame, speed, ok := e.buf.PopNext()
			if !ok {
				break
			}
			e.interpolate(ctx, frame, speed)
			e.buf.Done()

			if ctx.Err() != nil {
				return
			}
		}

		select {
		case <-ctx.Done():
			log.Debug("executor stopped", "region", e.region)
			return
		case <-e.buf.Wake():
		}
	}
}

// IsIdle reports whether the buffer is drained and no frame is being
// interpolated. Both conditions are judged under the buffer's mutex,
// so a popped-but-unfinished frame is never reported as idle.
func (e *Executor) IsIdle() bool {
	return e.buf.Idle()
}

// WaitIdle blocks the caller (not the executor) until the region is
// idle or ctx expires. It polls at the emission tick.
func (e *Executor) WaitIdle(ctx context.Context) error {
	ticker := time.NewTicker(Tick)
	defer ticker.Stop()

	for {
		if e.IsIdle() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// LastAngles returns a copy of the last-commanded logical angles.
func (e *Executor) LastAngles() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]float64, len(e.last))
	copy(out, e.last)
	return out
}

// WriteFailures returns the count of servo writes that errored.
func (e *Executor) WriteFailures() uint64 {
	return e.writeFails.Load()
}

// interpolate moves every joint linearly from the last-commanded
// angles to the frame's targets, one emission per tick. A Clear during
// interpolation (generation change) aborts after the current tick,
// leaving the joints at the last-emitted position.
func (e *Executor) interpolate(ctx context.Context, frame Frame, speed float64) {
	e.mu.Lock()
	from := make([]float64, len(e.last))
	copy(from, e.last)
	e.mu.Unlock()

	maxDelta := 0.0
	for i, target := range frame {
		if d := math.Abs(target - from[i]); d > maxDelta {
			maxDelta = d
		}
	}

	duration := FrameDuration(speed, maxDelta, e.region.MaxRate())
	steps := int(duration / Tick)
	if steps < 1 {
		steps = 1
	}

	gen := e.buf.Generation()
	ticker := time.NewTicker(Tick)
	defer ticker.Stop()

	angles := make([]float64, len(frame))
	for step := 1; step <= steps; step++ {
		alpha := float64(step) / float64(steps)
		for i := range frame {
			angles[i] = from[i] + (frame[i]-from[i])*alpha
		}
		e.emit(angles)

		if step == steps {
			break
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if e.buf.Generation() != gen {
			// Cancelled mid-frame: stop where the joints are.
			return
		}
	}
}

// emit writes one angle vector to the servos and records it. A failed
// write is logged and skipped; the executor never retries or stalls
// the region on one bad write.
func (e *Executor) emit(angles []float64) {
	for i, j := range e.joints {
		if err := e.writer.Write(j.ID, j.Command(angles[i])); err != nil {
			e.writeFails.Add(1)
			log.Warn("servo write failed", "region", e.region, "joint", j.Name, "err", err)
		}
	}

	e.mu.Lock()
	copy(e.last, angles)
	sink := e.sink
	e.mu.Unlock()

	if sink != nil {
		out := make([]float64, len(angles))
		copy(out, angles)
		sink(e.region, out)
	}
}
