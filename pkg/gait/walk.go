package gait

// Walk parameters. Stride and lift in millimeters; the turn rate is
// the inside-leg stride scale while turning.
const (
	WalkStride   = 80.0
	WalkLift     = 20.0
	WalkHeight   = 80.0
	WalkTurnRate = 0.3
	WalkCOGShift = 5.0
	walkSubsteps = 6
)

// Walk generates one walking cycle: eight sections, alternating one
// stepping leg with a no-op break section. Only one foot is ever off
// the ground, so the walk is statically stable at any execution speed.
// The stepping order depends on travel direction.
func Walk(dir Direction, turn Turn) Cycle {
	p := params{
		stride:   WalkStride,
		lift:     WalkLift,
		height:   WalkHeight,
		turnRate: WalkTurnRate,
		cogShift: WalkCOGShift,
		substeps: walkSubsteps,
	}

	// Legs numbered 1..4 = left-hind, left-front, right-hind,
	// right-front. Forward steps 1, 4, 2, 3; backward mirrors the
	// order front-to-back.
	var order [][]int
	if dir == Forward {
		order = [][]int{{0}, {}, {3}, {}, {1}, {}, {2}, {}}
	} else {
		order = [][]int{{2}, {}, {1}, {}, {3}, {}, {0}, {}}
	}

	return generate(p, order, dir, turn)
}
