package kinematics

import "math"

// Body geometry in millimeters: hip-to-hip spacing used when tilting
// the body, and the default standing height.
const (
	HalfLength    = 62.0 // hip to body center, fore/aft
	HalfWidth     = 47.5 // hip to body centerline, lateral
	DefaultHeight = 80.0 // hip height above the feet when standing
)

// RPY is a body orientation in degrees.
type RPY struct {
	Roll, Pitch, Yaw float64
}

// BodyOffset is a body-relative translation in millimeters: X forward,
// Y left, Z up.
type BodyOffset struct {
	X, Y, Z float64
}

// StandStance returns the neutral stance: all feet directly under their
// hips at the default height.
func StandStance() Stance {
	var s Stance
	for leg := range s {
		s[leg] = FootTarget{Y: 0, Z: DefaultHeight}
	}
	return s
}

// StanceForPose derives the four foot targets that realize a body pose.
// Translating the body moves every foot the opposite way; rolling
// raises one side's hips and lowers the other's; pitching does the
// same fore/aft. Yaw has no effect on the sagittal-plane targets and is
// handled by the gait layer.
func StanceForPose(offset BodyOffset, rpy RPY) Stance {
	s := StandStance()

	rollDrop := HalfWidth * math.Tan(rad(rpy.Roll))
	pitchDrop := HalfLength * math.Tan(rad(rpy.Pitch))

	for leg := range s {
		s[leg].Y -= offset.X
		s[leg].Z += offset.Z

		// Positive roll drops the right side.
		if Mirrored(leg) {
			s[leg].Z -= rollDrop
		} else {
			s[leg].Z += rollDrop
		}

		// Positive pitch drops the nose.
		if leg == LegLeftFront || leg == LegRightFront {
			s[leg].Z -= pitchDrop
		} else {
			s[leg].Z += pitchDrop
		}
	}
	return s
}
