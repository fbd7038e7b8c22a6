package actuator

// JointName identifies a joint on the robot.
type JointName string

// Joint names. Leg joints follow the canonical leg order (left-hind,
// left-front, right-hind, right-front), hip then knee for each leg.
const (
	LeftHindHip    JointName = "left_hind_hip"
	LeftHindKnee   JointName = "left_hind_knee"
	LeftFrontHip   JointName = "left_front_hip"
	LeftFrontKnee  JointName = "left_front_knee"
	RightHindHip   JointName = "right_hind_hip"
	RightHindKnee  JointName = "right_hind_knee"
	RightFrontHip  JointName = "right_front_hip"
	RightFrontKnee JointName = "right_front_knee"

	HeadYaw   JointName = "head_yaw"
	HeadRoll  JointName = "head_roll"
	HeadPitch JointName = "head_pitch"

	Tail JointName = "tail"
)

// JointsFor returns the joint names of a region in frame order
// (matching servo IDs and the angle-frame layout).
func JointsFor(r Region) []JointName {
	switch r {
	case RegionLegs:
		return []JointName{
			LeftHindHip, LeftHindKnee,
			LeftFrontHip, LeftFrontKnee,
			RightHindHip, RightHindKnee,
			RightFrontHip, RightFrontKnee,
		}
	case RegionHead:
		return []JointName{HeadYaw, HeadRoll, HeadPitch}
	case RegionTail:
		return []JointName{Tail}
	default:
		return nil
	}
}

// MaxTrim bounds the operator-set calibration trim, in degrees.
const MaxTrim = 20.0

// Joint is one physical actuator.
type Joint struct {
	Name JointName

	// ID is the servo bus ID.
	ID int

	// Min and Max bound the commanded wire angle, in degrees.
	Min, Max float64

	// Origin is the mechanical zero offset, in degrees.
	Origin float64

	// Trim is the operator-set calibration offset, in degrees.
	// It is read-only to the motion core at runtime.
	Trim float64

	// Direction mirrors left/right sides: +1 or -1.
	Direction float64
}

// Command converts a requested logical angle into the wire angle:
// direction x (origin + requested + trim), clamped to [Min, Max].
// Out-of-bounds requests are clamped, not rejected.
func (j Joint) Command(requested float64) float64 {
	angle := j.Direction * (j.Origin + requested + j.Trim)
	if angle < j.Min {
		return j.Min
	}
	if angle > j.Max {
		return j.Max
	}
	return angle
}
