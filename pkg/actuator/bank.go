package actuator

import "fmt"

// Bank holds every joint on the robot, addressable by name and by region.
// It is loaded once at startup (defaults plus the external calibration
// file) and treated as read-only by the motion core afterward.
type Bank struct {
	joints map[JointName]Joint
}

// DefaultBank returns a bank with the stock geometry: servo IDs in frame
// order (legs 1-8, head 9-11, tail 12), symmetric bounds, zero trim.
func DefaultBank() *Bank {
	b := &Bank{joints: make(map[JointName]Joint, 12)}

	id := 1
	for _, region := range Regions() {
		for _, name := range JointsFor(region) {
			b.joints[name] = Joint{
				Name:      name,
				ID:        id,
				Min:       -90,
				Max:       90,
				Direction: 1,
			}
			id++
		}
	}

	// Head pitch has an asymmetric range: the chin hits the chest well
	// before the servo's mechanical limit.
	hp := b.joints[HeadPitch]
	hp.Min, hp.Max = -45, 30
	b.joints[HeadPitch] = hp

	return b
}

// Joint returns the joint with the given name.
func (b *Bank) Joint(name JointName) (Joint, bool) {
	j, ok := b.joints[name]
	return j, ok
}

// Region returns a region's joints in frame order.
func (b *Bank) Region(r Region) []Joint {
	names := JointsFor(r)
	joints := make([]Joint, len(names))
	for i, name := range names {
		joints[i] = b.joints[name]
	}
	return joints
}

// ApplyCalibration folds operator calibration into the bank. Entries for
// unknown joints or with trims beyond +/-MaxTrim are rejected and leave
// the bank unchanged.
func (b *Bank) ApplyCalibration(cal Calibration) error {
	if err := cal.Validate(); err != nil {
		return err
	}
	for name := range cal {
		if _, ok := b.joints[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownJoint, name)
		}
	}
	for name, jc := range cal {
		j := b.joints[name]
		if jc.ID != 0 {
			j.ID = jc.ID
		}
		j.Trim = jc.Trim
		if jc.Direction != 0 {
			j.Direction = float64(jc.Direction)
		}
		b.joints[name] = j
	}
	return nil
}
