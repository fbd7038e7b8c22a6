package actuator

import "errors"

var (
	// ErrUnknownRegion is returned when a region name does not exist.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrUnknownJoint is returned when a calibration entry names a joint
	// that is not part of the robot.
	ErrUnknownJoint = errors.New("unknown joint")

	// ErrTrimRange is returned when a calibration trim exceeds +/-20 degrees.
	ErrTrimRange = errors.New("trim out of range")
)
