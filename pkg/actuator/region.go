// Package actuator models the quadruped's joints: identity, limits,
// calibration trim, and the per-region grouping used by the motion
// pipeline. The command pipeline is sign x (origin + requested + trim),
// clamped to the joint's mechanical bounds.
package actuator

// Region identifies one independently buffered and executed body region.
type Region string

const (
	RegionLegs Region = "legs"
	RegionHead Region = "head"
	RegionTail Region = "tail"
)

// Regions returns all regions in canonical order.
func Regions() []Region {
	return []Region{RegionLegs, RegionHead, RegionTail}
}

// FrameSize returns the number of joints a frame for this region carries.
func (r Region) FrameSize() int {
	switch r {
	case RegionLegs:
		return 8
	case RegionHead:
		return 3
	case RegionTail:
		return 1
	default:
		return 0
	}
}

// MaxRate returns the region's maximum angular rate in degrees per second.
// The executor uses it as a floor on frame durations so no joint is ever
// commanded faster than its servos can track.
func (r Region) MaxRate() float64 {
	switch r {
	case RegionLegs:
		return 428
	case RegionHead:
		return 300
	case RegionTail:
		return 500
	default:
		return 0
	}
}

// String returns the region name.
func (r Region) String() string {
	return string(r)
}

// ParseRegion maps a region name to a Region.
func ParseRegion(name string) (Region, error) {
	switch Region(name) {
	case RegionLegs, RegionHead, RegionTail:
		return Region(name), nil
	default:
		return "", ErrUnknownRegion
	}
}
