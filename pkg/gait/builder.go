package gait

import (
	"math"

	"github.com/openpup/go-pup/pkg/kinematics"
)

// generate builds a cycle from a section plan. Each entry of order
// lists the legs airborne during that section (empty means a break
// section where every leg stays grounded). Within a section the
// airborne legs sweep a cosine ease over the sub-steps while grounded
// legs drag backward linearly, conserving net body displacement; the
// drag per section is stride/(sections-1), so after a full cycle every
// foot is back at its starting offset.
func generate(p params, order [][]int, dir Direction, turn Turn) Cycle {
	sections := len(order)
	scale := strideScale(turn, p.turnRate)
	d := float64(dir)

	// Per-leg stride after turn scaling, and the section in which each
	// leg steps.
	var strides [kinematics.NumLegs]float64
	var stepSection [kinematics.NumLegs]int
	for leg := 0; leg < kinematics.NumLegs; leg++ {
		strides[leg] = p.stride * scale[leg]
	}
	for s, legs := range order {
		for _, leg := range legs {
			stepSection[leg] = s
		}
	}

	// Starting offsets center each foot's excursion on the COG
	// compensation point: a leg that steps late starts further
	// forward, because it drags longer before recovering.
	var y [kinematics.NumLegs]float64
	var start [kinematics.NumLegs]float64
	grounded := float64(sections - 1)
	for leg := 0; leg < kinematics.NumLegs; leg++ {
		drag := strides[leg] / grounded
		start[leg] = p.cogShift + d*(float64(stepSection[leg])*drag-strides[leg]/2)
		y[leg] = start[leg]
	}

	airborne := func(legs []int, leg int) bool {
		for _, l := range legs {
			if l == leg {
				return true
			}
		}
		return false
	}

	n := float64(p.substeps)
	stances := make([]kinematics.Stance, 0, sections*p.substeps+1)

	for _, legs := range order {
		sectionStart := y
		for sub := 1; sub <= p.substeps; sub++ {
			frac := float64(sub) / n
			var stance kinematics.Stance
			for leg := 0; leg < kinematics.NumLegs; leg++ {
				if airborne(legs, leg) {
					// Cosine ease from the section-start offset
					// forward by one stride, with a linear
					// rise-then-fall lift.
					theta := math.Pi * frac
					stance[leg].Y = sectionStart[leg] + d*strides[leg]*(1-math.Cos(theta))/2
					stance[leg].Z = p.height - p.lift*(1-math.Abs(2*frac-1))
				} else {
					// Grounded legs drag backward to move the body.
					drag := strides[leg] / grounded
					stance[leg].Y = sectionStart[leg] - d*drag*frac
					stance[leg].Z = p.height
				}
				y[leg] = stance[leg].Y
			}
			stances = append(stances, stance)
		}
	}

	// Explicit return-to-origin stance; the construction closes the
	// cycle analytically, this guards accumulated float drift.
	var home kinematics.Stance
	for leg := 0; leg < kinematics.NumLegs; leg++ {
		home[leg] = kinematics.FootTarget{Y: start[leg], Z: p.height}
	}
	stances = append(stances, home)

	return Cycle{
		Stances: stances,
		Travel:  d * p.stride,
		Strides: strides,
	}
}
