package kinematics

import (
	"fmt"
	"math"
)

// SolveLeg computes the upper (hip) and lower (knee) joint angles, in
// degrees, that place the foot at the given target.
//
// The solution is the classic two-link triangle: with d the hip-to-foot
// distance, the interior knee angle comes from the law of cosines, and
// the hip angle is the target vector's angle plus the hip corner of the
// same triangle. The lower joint carries a fixed -90 degree mechanical
// offset (the knee servo's zero points the lower link straight down
// when the upper link is horizontal). Right-side legs are mirrored:
// both outputs are negated.
func SolveLeg(foot FootTarget, mirrored bool) (upper, lower float64, err error) {
	d := math.Hypot(foot.Y, foot.Z)
	if d < MinReach || d > MaxReach {
		return 0, 0, fmt.Errorf("%w: d=%.1fmm want [%.1f, %.1f]", ErrOutOfReach, d, MinReach, MaxReach)
	}

	// Interior knee angle between the two links.
	knee := acosSafe((UpperLen*UpperLen + LowerLen*LowerLen - d*d) / (2 * UpperLen * LowerLen))

	// Angle of the target vector from straight down, plus the hip
	// corner of the (UpperLen, LowerLen, d) triangle.
	phi := math.Atan2(foot.Y, foot.Z)
	hip := acosSafe((UpperLen*UpperLen + d*d - LowerLen*LowerLen) / (2 * UpperLen * d))

	upper = deg(phi + hip)
	lower = deg(knee) - 90

	if mirrored {
		upper, lower = -upper, -lower
	}
	return upper, lower, nil
}

// ForwardLeg is the forward-kinematic inverse of SolveLeg: given joint
// angles in degrees it returns the foot position. Used by round-trip
// diagnostics and tests.
func ForwardLeg(upper, lower float64, mirrored bool) FootTarget {
	if mirrored {
		upper, lower = -upper, -lower
	}

	alpha := rad(upper)
	knee := rad(lower + 90)

	// Absolute angle of the lower link from straight down.
	gamma := alpha + knee - math.Pi

	return FootTarget{
		Y: UpperLen*math.Sin(alpha) + LowerLen*math.Sin(gamma),
		Z: UpperLen*math.Cos(alpha) + LowerLen*math.Cos(gamma),
	}
}

// SolveBody solves all four legs of a stance into the eight-angle leg
// frame layout (hip, knee per leg in canonical leg order). Right-side
// legs are mirrored. The first unreachable foot aborts the solve.
func SolveBody(stance Stance) ([8]float64, error) {
	var angles [8]float64
	for leg, foot := range stance {
		upper, lower, err := SolveLeg(foot, Mirrored(leg))
		if err != nil {
			return angles, fmt.Errorf("leg %d: %w", leg, err)
		}
		angles[2*leg] = upper
		angles[2*leg+1] = lower
	}
	return angles, nil
}
