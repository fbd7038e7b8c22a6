// Package kinematics converts foot targets into joint angles for the
// quadruped's two-link legs, and body poses into full stances. All
// functions are pure and safe to call concurrently.
package kinematics

import "math"

// Segment lengths in millimeters. Each leg is an upper link (hip to
// knee) and a lower link (knee to foot) moving in the sagittal plane.
const (
	UpperLen = 42.0
	LowerLen = 76.0
)

// MinReach and MaxReach bound the hip-to-foot distance a leg can solve.
const (
	MinReach = LowerLen - UpperLen
	MaxReach = LowerLen + UpperLen
)

// FootTarget is a foot position relative to its hip, in millimeters.
// Y is forward (positive toward the head), Z is the height of the hip
// above the foot (positive down).
type FootTarget struct {
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Leg indices in a Stance.
const (
	LegLeftHind = iota
	LegLeftFront
	LegRightHind
	LegRightFront
	NumLegs
)

// Stance is the four foot targets at one instant, in canonical leg
// order: left-hind, left-front, right-hind, right-front.
type Stance [NumLegs]FootTarget

// Mirrored reports whether the leg at the given stance index is on the
// robot's right side and needs its joint angles negated.
func Mirrored(leg int) bool {
	return leg == LegRightHind || leg == LegRightFront
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// acosSafe clamps its argument into [-1, 1] before calling acos, so
// float error at the edge of the reachable envelope cannot produce NaN.
func acosSafe(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Acos(x)
}
