// Package servobus implements the motion writer over a Feetech serial
// servo bus. Degrees-to-counts conversion assumes STS-class servos
// with a 4096-count revolution centered at 2048.
package servobus

import (
	"context"
	"fmt"

	"github.com/hipsterbrown/feetech-servo/feetech"
)

const (
	baudRate     = 1_000_000
	countsPerRev = 4096
	centerCount  = 2048
)

// Bus drives the robot's servos over one serial port.
type Bus struct {
	bus   *feetech.Bus
	group *feetech.ServoGroup
	ctx   context.Context
}

// Open connects to the servo bus and prepares a group for the given
// servo IDs.
func Open(ctx context.Context, port string, ids []int) (*Bus, error) {
	bus, err := feetech.NewBus(feetech.BusConfig{
		Port:     port,
		BaudRate: baudRate,
		Protocol: feetech.ProtocolSTS,
	})
	if err != nil {
		return nil, fmt.Errorf("open bus: %w", err)
	}

	return &Bus{
		bus:   bus,
		group: feetech.NewServoGroupByIDs(bus, ids...),
		ctx:   ctx,
	}, nil
}

// Enable enables torque on all servos.
func (b *Bus) Enable() error {
	return b.group.EnableAll(b.ctx)
}

// Disable disables torque on all servos.
func (b *Bus) Disable() error {
	return b.group.DisableAll(b.ctx)
}

// Close releases the serial port.
func (b *Bus) Close() error {
	return b.bus.Close()
}

// Write commands one servo to a wire angle in degrees.
func (b *Bus) Write(id int, angle float64) error {
	raw := centerCount + int(angle/360*countsPerRev)
	if raw < 0 {
		raw = 0
	}
	if raw >= countsPerRev {
		raw = countsPerRev - 1
	}

	if err := b.group.SetPositions(b.ctx, feetech.PositionMap{id: raw}); err != nil {
		return fmt.Errorf("write servo %d: %w", id, err)
	}
	return nil
}
