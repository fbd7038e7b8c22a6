// Package gait generates foot-trajectory cycles for the quadruped's
// two locomotion modes: a statically stable walk (one leg in the air
// at a time) and a faster trot (diagonal pairs). Generators are pure:
// a cycle is finite, deterministic for its inputs, and regenerated on
// every call rather than cached or restarted.
package gait

import "github.com/openpup/go-pup/pkg/kinematics"

// Direction selects travel fore or aft. Backward cycles are computed
// with direction-aware formulas (sign flips plus a different stepping
// order), not by reversing the forward sequence.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Turn biases the cycle toward one side by shortening the stride of
// the inside legs.
type Turn int

const (
	Left     Turn = -1
	Straight Turn = 0
	Right    Turn = 1
)

// Cycle is one complete locomotion cycle: an ordered, finite sequence
// of stances ending with an explicit return-to-origin stance.
type Cycle struct {
	Stances []kinematics.Stance

	// Travel is the signed body displacement produced by executing
	// the cycle once, in millimeters. For turning cycles this is the
	// outside-leg figure.
	Travel float64

	// Strides holds the per-leg stride actually used, after turn
	// scaling, in canonical leg order.
	Strides [kinematics.NumLegs]float64
}

// Len returns the number of stances in the cycle.
func (c Cycle) Len() int { return len(c.Stances) }

// params describes one gait variant.
type params struct {
	stride   float64 // full stride length, mm
	lift     float64 // foot clearance at mid-step, mm
	height   float64 // hip height while walking, mm
	turnRate float64 // inside-leg stride scale while turning
	cogShift float64 // forward foot offset compensating a rearward COG, mm
	substeps int     // interpolation steps per section
}

// strideScale returns the per-leg stride multipliers for a turn.
// Inside legs get the scaled (shorter) stride; outside legs keep the
// full stride.
func strideScale(turn Turn, turnRate float64) [kinematics.NumLegs]float64 {
	scale := [kinematics.NumLegs]float64{1, 1, 1, 1}
	for leg := range scale {
		switch {
		case turn == Right && kinematics.Mirrored(leg):
			scale[leg] = turnRate
		case turn == Left && !kinematics.Mirrored(leg):
			scale[leg] = turnRate
		}
	}
	return scale
}
