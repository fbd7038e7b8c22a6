// Package pose holds the robot's commanded body pose and turns it into
// leg angle frames on demand. The controller is a stateful facade over
// the kinematics solver; setters mutate the current target only, no
// history is kept.
package pose

import (
	"sync"

	"github.com/openpup/go-pup/internal/log"
	"github.com/openpup/go-pup/pkg/kinematics"
	"github.com/openpup/go-pup/pkg/motion"
)

// OrientationSource supplies the measured body roll and pitch, in
// degrees. Typically backed by an IMU driver, which is outside this
// core.
type OrientationSource interface {
	RollPitch() (roll, pitch float64, err error)
}

// Controller holds the current commanded pose. All methods are safe
// for concurrent use; Resolve performs no I/O.
type Controller struct {
	mu     sync.RWMutex
	offset kinematics.BodyOffset
	rpy    kinematics.RPY

	// corrRoll and corrPitch hold the active feedback correction. They
	// are kept apart from rpy so the commanded target stays pristine:
	// each feedback update replaces the correction, it never compounds
	// into the target.
	corrRoll  float64
	corrPitch float64

	// legs, when set, overrides the pose-derived stance.
	legs    kinematics.Stance
	legsSet bool

	imu      OrientationSource
	rollPID  PID
	pitchPID PID
}

// NewController creates a controller at the neutral pose. imu may be
// nil; feedback requests then fall back to the raw targets.
func NewController(imu OrientationSource) *Controller {
	return &Controller{
		imu:      imu,
		rollPID:  NewFeedbackPID(),
		pitchPID: NewFeedbackPID(),
	}
}

// SetPosition updates the body translation target, in millimeters.
// Nil fields leave the prior value unchanged.
func (c *Controller) SetPosition(x, y, z *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if x != nil {
		c.offset.X = *x
	}
	if y != nil {
		c.offset.Y = *y
	}
	if z != nil {
		c.offset.Z = *z
	}
	c.legsSet = false
}

// SetRPY updates the body orientation target, in degrees. Nil fields
// leave the prior value unchanged. With useFeedback, a proportional
// correction against the measured orientation is computed from the
// target and held alongside it; repeated calls with the same target
// and measurement yield the same corrected orientation. Without
// useFeedback any held correction is dropped.
func (c *Controller) SetRPY(roll, pitch, yaw *float64, useFeedback bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if roll != nil {
		c.rpy.Roll = *roll
	}
	if pitch != nil {
		c.rpy.Pitch = *pitch
	}
	if yaw != nil {
		c.rpy.Yaw = *yaw
	}

	c.corrRoll, c.corrPitch = 0, 0
	if useFeedback && c.imu != nil {
		mRoll, mPitch, err := c.imu.RollPitch()
		if err != nil {
			log.Warn("orientation feedback unavailable", "err", err)
		} else {
			c.corrRoll = c.rollPID.Update(c.rpy.Roll, mRoll)
			c.corrPitch = c.pitchPID.Update(c.rpy.Pitch, mPitch)
		}
	}
	c.legsSet = false
}

// SetLegs overrides the pose-derived stance with explicit foot
// targets. The override holds until the next pose or orientation
// setter.
func (c *Controller) SetLegs(stance kinematics.Stance) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.legs = stance
	c.legsSet = true
}

// Pose returns the current commanded translation and orientation, with
// any active feedback correction folded into the roll and pitch.
func (c *Controller) Pose() (kinematics.BodyOffset, kinematics.RPY) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset, c.effectiveRPY()
}

// effectiveRPY is the commanded orientation plus the held correction.
// Callers hold c.mu.
func (c *Controller) effectiveRPY() kinematics.RPY {
	rpy := c.rpy
	rpy.Roll += c.corrRoll
	rpy.Pitch += c.corrPitch
	return rpy
}

// Resolve derives the stance for the current pose (or the explicit leg
// override) and solves it into a legs angle frame.
func (c *Controller) Resolve() (motion.Frame, error) {
	c.mu.RLock()
	var stance kinematics.Stance
	if c.legsSet {
		stance = c.legs
	} else {
		stance = kinematics.StanceForPose(c.offset, c.effectiveRPY())
	}
	c.mu.RUnlock()

	angles, err := kinematics.SolveBody(stance)
	if err != nil {
		return nil, err
	}
	return angles[:], nil
}
