package gait

// Trot parameters. The trot covers more ground per cycle with far
// fewer stances, and shifts the feet further forward to keep the
// center of gravity over the grounded diagonal.
const (
	TrotStride   = 100.0
	TrotLift     = 20.0
	TrotHeight   = 80.0
	TrotTurnRate = 0.5
	TrotCOGShift = 15.0
	trotSubsteps = 3
)

// Trot generates one trotting cycle: two sections, each lifting a
// diagonal leg pair (left-hind with right-front, then left-front with
// right-hind). Only two feet are grounded at a time, so the trot is
// stable only when executed fast enough; the generator documents but
// does not enforce that constraint.
func Trot(dir Direction, turn Turn) Cycle {
	p := params{
		stride:   TrotStride,
		lift:     TrotLift,
		height:   TrotHeight,
		turnRate: TrotTurnRate,
		cogShift: TrotCOGShift,
		substeps: trotSubsteps,
	}

	var order [][]int
	if dir == Forward {
		order = [][]int{{0, 3}, {1, 2}}
	} else {
		order = [][]int{{1, 2}, {0, 3}}
	}

	return generate(p, order, dir, turn)
}
