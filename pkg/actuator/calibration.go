package actuator

import (
	"encoding/json"
	"fmt"
	"os"
)

// JointCalibration holds operator calibration for a single joint.
type JointCalibration struct {
	ID        int     `json:"id,omitempty"`
	Trim      float64 `json:"trim"`
	Direction int     `json:"direction,omitempty"` // +1 or -1; 0 keeps the default
}

// Calibration holds calibration data for all joints, keyed by joint name.
// It is written by an external calibration tool; the motion core only
// reads it at startup.
type Calibration map[JointName]JointCalibration

// LoadCalibration loads calibration data from a JSON file.
func LoadCalibration(path string) (Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calibration file: %w", err)
	}

	var raw map[string]JointCalibration
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse calibration JSON: %w", err)
	}

	cal := make(Calibration, len(raw))
	for name, jc := range raw {
		cal[JointName(name)] = jc
	}

	if err := cal.Validate(); err != nil {
		return nil, err
	}
	return cal, nil
}

// Validate checks every entry's trim and direction.
func (c Calibration) Validate() error {
	for name, jc := range c {
		if jc.Trim < -MaxTrim || jc.Trim > MaxTrim {
			return fmt.Errorf("%w: %s trim %.1f", ErrTrimRange, name, jc.Trim)
		}
		if jc.Direction != 0 && jc.Direction != 1 && jc.Direction != -1 {
			return fmt.Errorf("invalid direction for %s: %d", name, jc.Direction)
		}
	}
	return nil
}
