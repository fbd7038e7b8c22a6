package motion

import (
	"context"
	"fmt"

	"github.com/openpup/go-pup/internal/log"
	"github.com/openpup/go-pup/pkg/actuator"
	"github.com/openpup/go-pup/pkg/kinematics"
)

// Core owns the three region buffers and executors and is the surface
// the behavior layer talks to. Pushes from any goroutine are safe;
// exclusion is per region, and no ordering is implied across regions.
type Core struct {
	bank  *actuator.Bank
	bufs  map[actuator.Region]*Buffer
	execs map[actuator.Region]*Executor
}

// NewCore builds buffers and executors for all regions over one
// actuator writer.
func NewCore(bank *actuator.Bank, writer Writer) *Core {
	c := &Core{
		bank:  bank,
		bufs:  make(map[actuator.Region]*Buffer),
		execs: make(map[actuator.Region]*Executor),
	}
	for _, region := range actuator.Regions() {
		buf := NewBuffer(region)
		c.bufs[region] = buf
		c.execs[region] = NewExecutor(region, bank.Region(region), buf, writer)
	}
	return c
}

// Start launches one executor goroutine per region. They run until ctx
// is cancelled.
func (c *Core) Start(ctx context.Context) {
	for _, region := range actuator.Regions() {
		go c.execs[region].Run(ctx)
	}
	log.Info("motion core started", "regions", len(c.execs))
}

// SetTelemetry installs a sink observing every emitted angle vector on
// every region.
func (c *Core) SetTelemetry(sink Sink) {
	for _, e := range c.execs {
		e.SetSink(sink)
	}
}

// PushRegion enqueues frames for a region. replace=true discards
// pending frames first. A malformed frame rejects the push
// synchronously and leaves the buffer unchanged.
func (c *Core) PushRegion(region actuator.Region, frames []Frame, replace bool, speed float64) error {
	buf, ok := c.bufs[region]
	if !ok {
		return fmt.Errorf("%w: %s", actuator.ErrUnknownRegion, region)
	}
	return buf.Push(frames, replace, speed)
}

// IsRegionIdle reports whether a region's buffer is drained and its
// executor is between frames.
func (c *Core) IsRegionIdle(region actuator.Region) bool {
	e, ok := c.execs[region]
	return ok && e.IsIdle()
}

// WaitRegionIdle blocks until the region is idle or ctx expires.
func (c *Core) WaitRegionIdle(ctx context.Context, region actuator.Region) error {
	e, ok := c.execs[region]
	if !ok {
		return fmt.Errorf("%w: %s", actuator.ErrUnknownRegion, region)
	}
	return e.WaitIdle(ctx)
}

// QueueLen returns a region's pending frame count.
func (c *Core) QueueLen(region actuator.Region) int {
	if buf, ok := c.bufs[region]; ok {
		return buf.Len()
	}
	return 0
}

// LastAngles returns the last-commanded logical angles for a region.
func (c *Core) LastAngles(region actuator.Region) []float64 {
	if e, ok := c.execs[region]; ok {
		return e.LastAngles()
	}
	return nil
}

// ClearRegion discards a region's pending frames and aborts any frame
// mid-interpolation at its last-emitted position.
func (c *Core) ClearRegion(region actuator.Region) {
	if buf, ok := c.bufs[region]; ok {
		buf.Clear()
	}
}

// EmergencyStop clears all three buffers, then pushes the lie posture
// to the legs with replace semantics so the robot settles somewhere
// safe. Head and tail stay at their last-emitted angles.
func (c *Core) EmergencyStop() {
	for _, region := range actuator.Regions() {
		c.bufs[region].Clear()
	}

	angles, err := kinematics.SolveBody(LieStance())
	if err != nil {
		// The lie stance is a fixed, reachable posture; failing to
		// solve it means the geometry constants are broken.
		log.Error("emergency stop: lie stance unsolvable", "err", err)
		return
	}
	if err := c.bufs[actuator.RegionLegs].Push([]Frame{angles[:]}, true, 20); err != nil {
		log.Error("emergency stop: push failed", "err", err)
	}
	log.Warn("emergency stop engaged")
}
