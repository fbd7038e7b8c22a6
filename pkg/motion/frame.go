// Package motion is the command pipeline between planners and servos:
// per-region angle-frame buffers, one executor goroutine per region
// interpolating frames into fixed-tick servo writes, and a registry of
// named motions built from the kinematics and gait packages.
package motion

import "github.com/openpup/go-pup/pkg/actuator"

// Frame is an ordered list of target angles, one per joint of a body
// region (8 for legs, 3 for head, 1 for tail), in degrees. Frames are
// copied on push and immutable once enqueued.
type Frame []float64

// Speed bounds for frame execution. 0 is slowest, 100 fastest; the
// executor additionally floors every frame's duration so no joint
// exceeds its region's maximum angular rate.
const (
	MinSpeed = 0.0
	MaxSpeed = 100.0
)

// clampSpeed restricts a requested speed to the valid range.
func clampSpeed(speed float64) float64 {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// validFrame reports whether a frame matches the region's layout.
func validFrame(region actuator.Region, f Frame) bool {
	return len(f) == region.FrameSize()
}
