package motion

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/openpup/go-pup/pkg/actuator"
)

// recordingWriter captures every servo write; an optional failure can
// be injected per ID.
type recordingWriter struct {
	mu     sync.Mutex
	writes map[int][]float64
	failID int
	failOn error
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{writes: make(map[int][]float64), failID: -1}
}

func (w *recordingWriter) Write(id int, angle float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if id == w.failID {
		return w.failOn
	}
	w.writes[id] = append(w.writes[id], angle)
	return nil
}

func (w *recordingWriter) last(id int) (float64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.writes[id]) == 0 {
		return 0, false
	}
	return w.writes[id][len(w.writes[id])-1], true
}

func (w *recordingWriter) count(id int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.writes[id])
}

func TestFrameDuration_SpeedLaw(t *testing.T) {
	cases := []struct {
		speed float64
		want  time.Duration
	}{
		{0, 500 * time.Millisecond},
		{50, 275 * time.Millisecond},
		{100, 50 * time.Millisecond},
	}
	for _, tc := range cases {
		if got := FrameDuration(tc.speed, 0, 0); got != tc.want {
			t.Errorf("FrameDuration(%v): got %v, want %v", tc.speed, got, tc.want)
		}
	}
}

func TestFrameDuration_RateFloor(t *testing.T) {
	// A 90 degree jump at full speed cannot beat the legs' 428 deg/s
	// limit: the rate floor wins over the 50ms speed law.
	got := FrameDuration(100, 90, 428)
	floor := 90.0 / 428.0
	want := time.Duration(floor * float64(time.Second))
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// A tiny move at full speed still takes the speed-law duration.
	if got := FrameDuration(100, 1, 428); got != 50*time.Millisecond {
		t.Errorf("small delta: got %v, want 50ms", got)
	}
}

func TestFrameDuration_NeverBelowTick(t *testing.T) {
	if got := FrameDuration(200, 0, 1000); got < Tick {
		t.Errorf("got %v, below the tick", got)
	}
}

// startExecutor wires an executor over a region's default joints and
// runs it until the test ends.
func startExecutor(t *testing.T, region actuator.Region, w Writer) (*Executor, *Buffer) {
	t.Helper()

	bank := actuator.DefaultBank()
	buf := NewBuffer(region)
	e := NewExecutor(region, bank.Region(region), buf, w)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go e.Run(ctx)
	return e, buf
}

func TestExecutor_DrainsToIdle(t *testing.T) {
	w := newRecordingWriter()
	e, buf := startExecutor(t, actuator.RegionTail, w)

	if err := buf.Push([]Frame{{10}, {20}}, false, 100); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := e.WaitIdle(ctx); err != nil {
		t.Fatalf("executor never went idle: %v", err)
	}

	last := e.LastAngles()
	if math.Abs(last[0]-20) > 1e-9 {
		t.Errorf("last angle: got %v, want 20", last[0])
	}

	// Tail joint is bus ID 12; the final wire write reflects the last
	// frame through the joint's calibration.
	bank := actuator.DefaultBank()
	tail := bank.Region(actuator.RegionTail)[0]
	got, ok := w.last(tail.ID)
	if !ok {
		t.Fatal("no writes reached the servo")
	}
	if math.Abs(got-tail.Command(20)) > 1e-9 {
		t.Errorf("wire angle: got %v, want %v", got, tail.Command(20))
	}
}

func TestExecutor_InterpolatesOverTicks(t *testing.T) {
	w := newRecordingWriter()
	e, buf := startExecutor(t, actuator.RegionTail, w)

	// Speed 0 is a 500ms frame: 50 emissions at the 10ms tick.
	if err := buf.Push([]Frame{{50}}, false, 0); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := e.WaitIdle(ctx); err != nil {
		t.Fatal(err)
	}

	bank := actuator.DefaultBank()
	id := bank.Region(actuator.RegionTail)[0].ID
	if n := w.count(id); n < 10 {
		t.Errorf("only %d emissions for a 500ms frame, want a tick-paced ramp", n)
	}
}

func TestExecutor_IdleImpliesFrameFinished(t *testing.T) {
	w := newRecordingWriter()
	e, buf := startExecutor(t, actuator.RegionTail, w)

	// Idle must never be observable while a popped frame is still
	// interpolating: whenever IsIdle reports true, the last pushed
	// target has fully landed.
	deadline := time.Now().Add(10 * time.Second)
	for i := 0; i < 25; i++ {
		target := float64(i%2) * 20
		if err := buf.Push([]Frame{{target}}, false, 100); err != nil {
			t.Fatal(err)
		}
		for !e.IsIdle() {
			if time.Now().After(deadline) {
				t.Fatal("executor never went idle")
			}
			time.Sleep(time.Millisecond)
		}
		if last := e.LastAngles(); math.Abs(last[0]-target) > 1e-9 {
			t.Fatalf("iteration %d: idle with last angle %v, want %v", i, last[0], target)
		}
	}
}

func TestExecutor_ClearAbortsMidFrame(t *testing.T) {
	w := newRecordingWriter()
	e, buf := startExecutor(t, actuator.RegionTail, w)

	if err := buf.Push([]Frame{{40}}, false, 0); err != nil {
		t.Fatal(err)
	}

	// Let the 500ms frame get underway, then cancel it.
	time.Sleep(100 * time.Millisecond)
	buf.Clear()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := e.WaitIdle(ctx); err != nil {
		t.Fatalf("executor did not stop after clear: %v", err)
	}

	last := e.LastAngles()
	if last[0] >= 40 {
		t.Errorf("frame ran to completion despite clear: last angle %v", last[0])
	}
	if last[0] <= 0 {
		t.Errorf("no progress before clear: last angle %v", last[0])
	}
}

func TestExecutor_WriteFailureDoesNotStall(t *testing.T) {
	w := newRecordingWriter()
	bank := actuator.DefaultBank()
	head := bank.Region(actuator.RegionHead)

	// Fail every write to the head's first joint; the other two must
	// keep moving.
	w.failID = head[0].ID
	w.failOn = errors.New("bus timeout")

	e, buf := startExecutor(t, actuator.RegionHead, w)
	if err := buf.Push([]Frame{{10, 10, 10}}, false, 100); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := e.WaitIdle(ctx); err != nil {
		t.Fatalf("a failing joint stalled the region: %v", err)
	}

	if e.WriteFailures() == 0 {
		t.Error("write failures not counted")
	}
	if _, ok := w.last(head[1].ID); !ok {
		t.Error("healthy joint received no writes")
	}

	// The logical frame completes even though one servo never heard it.
	last := e.LastAngles()
	for i, a := range last {
		if math.Abs(a-10) > 1e-9 {
			t.Errorf("joint %d last angle: got %v, want 10", i, a)
		}
	}
}

func TestExecutor_SinkObservesEmissions(t *testing.T) {
	w := newRecordingWriter()
	e, buf := startExecutor(t, actuator.RegionTail, w)

	var mu sync.Mutex
	var seen [][]float64
	e.SetSink(func(region actuator.Region, angles []float64) {
		if region != actuator.RegionTail {
			t.Errorf("sink region: got %v", region)
		}
		mu.Lock()
		seen = append(seen, angles)
		mu.Unlock()
	})

	if err := buf.Push([]Frame{{15}}, false, 100); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := e.WaitIdle(ctx); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) == 0 {
		t.Fatal("sink saw no emissions")
	}
	final := seen[len(seen)-1]
	if math.Abs(final[0]-15) > 1e-9 {
		t.Errorf("final sink angle: got %v, want 15", final[0])
	}
}

func TestCore_EmergencyStop(t *testing.T) {
	// No executors running: frames stay queued so the effect of the
	// stop on each buffer is observable.
	core := NewCore(actuator.DefaultBank(), newRecordingWriter())

	if err := core.PushRegion(actuator.RegionLegs, []Frame{make(Frame, 8), make(Frame, 8)}, false, 50); err != nil {
		t.Fatal(err)
	}
	if err := core.PushRegion(actuator.RegionHead, []Frame{{1, 2, 3}}, false, 50); err != nil {
		t.Fatal(err)
	}
	if err := core.PushRegion(actuator.RegionTail, []Frame{{5}}, false, 50); err != nil {
		t.Fatal(err)
	}

	core.EmergencyStop()

	if n := core.QueueLen(actuator.RegionHead); n != 0 {
		t.Errorf("head queue after stop: got %d, want 0", n)
	}
	if n := core.QueueLen(actuator.RegionTail); n != 0 {
		t.Errorf("tail queue after stop: got %d, want 0", n)
	}

	// Legs end up with exactly the safe lie frame.
	if n := core.QueueLen(actuator.RegionLegs); n != 1 {
		t.Fatalf("legs queue after stop: got %d, want 1", n)
	}
	frame, speed, _ := core.bufs[actuator.RegionLegs].PopNext()
	if len(frame) != actuator.RegionLegs.FrameSize() {
		t.Fatalf("safe frame size: got %d", len(frame))
	}
	if speed != 20 {
		t.Errorf("safe frame speed: got %v, want 20", speed)
	}
}

func TestCore_PushUnknownRegion(t *testing.T) {
	core := NewCore(actuator.DefaultBank(), newRecordingWriter())
	err := core.PushRegion(actuator.Region("wings"), []Frame{{0}}, false, 50)
	if !errors.Is(err, actuator.ErrUnknownRegion) {
		t.Errorf("got %v, want ErrUnknownRegion", err)
	}
}
