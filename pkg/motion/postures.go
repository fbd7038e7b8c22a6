package motion

import "github.com/openpup/go-pup/pkg/kinematics"

// Fixed postures, as stances. Values are foot offsets in millimeters
// (Y forward, Z hip height); all are well inside the reachable
// annulus.

// LieStance folds all four legs, belly on the ground. This is also the
// safe pose pushed by EmergencyStop.
func LieStance() kinematics.Stance {
	return kinematics.Stance{
		{Y: 30, Z: 40}, // left hind
		{Y: 30, Z: 40}, // left front
		{Y: 30, Z: 40}, // right hind
		{Y: 30, Z: 40}, // right front
	}
}

// SitStance folds the hind legs and keeps the front legs straight.
func SitStance() kinematics.Stance {
	return kinematics.Stance{
		{Y: 25, Z: 40},
		{Y: 0, Z: 80},
		{Y: 25, Z: 40},
		{Y: 0, Z: 80},
	}
}

// StretchStance reaches the front feet forward and low while the hind
// legs stay tall, the classic dog stretch.
func StretchStance() kinematics.Stance {
	return kinematics.Stance{
		{Y: -15, Z: 85},
		{Y: 55, Z: 45},
		{Y: -15, Z: 85},
		{Y: 55, Z: 45},
	}
}

// pushupStances alternates a high and a low stand with the weight
// forward.
func pushupStances() []kinematics.Stance {
	high := kinematics.Stance{
		{Y: -10, Z: 80},
		{Y: 10, Z: 80},
		{Y: -10, Z: 80},
		{Y: 10, Z: 80},
	}
	low := kinematics.Stance{
		{Y: -10, Z: 75},
		{Y: 10, Z: 45},
		{Y: -10, Z: 75},
		{Y: 10, Z: 45},
	}
	return []kinematics.Stance{high, low, high, low, high}
}

// framesFor solves a sequence of stances into leg frames.
func framesFor(stances ...kinematics.Stance) ([]Frame, error) {
	frames := make([]Frame, 0, len(stances))
	for _, s := range stances {
		angles, err := kinematics.SolveBody(s)
		if err != nil {
			return nil, err
		}
		frames = append(frames, angles[:])
	}
	return frames, nil
}
