package gait

import (
	"math"
	"testing"

	"github.com/openpup/go-pup/pkg/kinematics"
)

const tolerance = 1e-9

// groundedDrift sums a leg's forward/back movement across all stance
// pairs where the leg is on the ground. The body moves by the negation
// of this drift, so for a straight cycle it equals -dir*stride.
//
// The first emitted stance is already one sub-step into the cycle and
// the final stance is the cycle origin, so the walk is treated as
// periodic: the pair (final, first) supplies the segment before the
// first emitted stance.
func groundedDrift(c Cycle, leg int, height float64) float64 {
	drift := 0.0
	prev := c.Stances[c.Len()-1][leg]
	for _, s := range c.Stances {
		cur := s[leg]
		if math.Abs(prev.Z-height) < tolerance && math.Abs(cur.Z-height) < tolerance {
			drift += cur.Y - prev.Y
		}
		prev = cur
	}
	return drift
}

// travelRange returns max-min of a leg's forward/back coordinate over
// the cycle, which equals the stride that leg actually swept.
func travelRange(c Cycle, leg int) float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, s := range c.Stances {
		if s[leg].Y < min {
			min = s[leg].Y
		}
		if s[leg].Y > max {
			max = s[leg].Y
		}
	}
	return max - min
}

func TestWalk_StanceCount(t *testing.T) {
	// 8 sections x 6 sub-steps, plus the explicit return-to-origin
	// stance. The count is derived from the construction, not pinned
	// to the historical figure.
	c := Walk(Forward, Straight)
	want := 8*walkSubsteps + 1
	if c.Len() != want {
		t.Errorf("walk stance count: got %d, want %d", c.Len(), want)
	}
}

func TestTrot_StanceCount(t *testing.T) {
	c := Trot(Forward, Straight)
	want := 2*trotSubsteps + 1
	if c.Len() != want {
		t.Errorf("trot stance count: got %d, want %d", c.Len(), want)
	}
}

func TestWalk_Deterministic(t *testing.T) {
	a := Walk(Forward, Left)
	b := Walk(Forward, Left)
	if len(a.Stances) != len(b.Stances) {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Stances {
		if a.Stances[i] != b.Stances[i] {
			t.Fatalf("stance %d differs between generations", i)
		}
	}
}

func TestWalk_CycleCloses(t *testing.T) {
	// The first emitted stance is already one sub-step into the cycle,
	// so closure is checked against the largest single sub-step move:
	// the swing ease for a stepping leg, the drag share for the rest.
	swingStep := WalkStride * (1 - math.Cos(math.Pi/walkSubsteps)) / 2
	dragStep := WalkStride / 7 / walkSubsteps
	bound := math.Max(swingStep, dragStep) + tolerance

	for _, dir := range []Direction{Forward, Backward} {
		c := Walk(dir, Straight)
		first, last := c.Stances[0], c.Stances[c.Len()-1]
		for leg := 0; leg < kinematics.NumLegs; leg++ {
			if math.Abs(first[leg].Y-last[leg].Y) > bound {
				t.Errorf("dir %v leg %d: cycle not closed, first %v last %v",
					dir, leg, first[leg].Y, last[leg].Y)
			}
			if math.Abs(last[leg].Z-WalkHeight) > tolerance {
				t.Errorf("dir %v leg %d: final stance not grounded", dir, leg)
			}
		}
	}
}

func TestWalk_DisplacementSymmetry(t *testing.T) {
	fwd := Walk(Forward, Straight)
	bwd := Walk(Backward, Straight)

	for leg := 0; leg < kinematics.NumLegs; leg++ {
		f := groundedDrift(fwd, leg, WalkHeight)
		b := groundedDrift(bwd, leg, WalkHeight)

		if math.Abs(f+WalkStride) > 1e-6 {
			t.Errorf("leg %d forward drift: got %v, want %v", leg, f, -WalkStride)
		}
		if math.Abs(f+b) > 1e-6 {
			t.Errorf("leg %d: forward %v and backward %v drift not opposite", leg, f, b)
		}
	}
}

func TestTrot_DisplacementSymmetry(t *testing.T) {
	fwd := Trot(Forward, Straight)
	bwd := Trot(Backward, Straight)

	for leg := 0; leg < kinematics.NumLegs; leg++ {
		f := groundedDrift(fwd, leg, TrotHeight)
		b := groundedDrift(bwd, leg, TrotHeight)
		if math.Abs(f+b) > 1e-6 {
			t.Errorf("leg %d: forward %v and backward %v drift not opposite", leg, f, b)
		}
	}
}

func TestWalk_TurnScalesInsideStride(t *testing.T) {
	right := Walk(Forward, Right)

	inside := travelRange(right, kinematics.LegRightFront)
	outside := travelRange(right, kinematics.LegLeftFront)

	if inside >= outside {
		t.Fatalf("inside stride %v not shorter than outside %v", inside, outside)
	}
	if math.Abs(inside/outside-WalkTurnRate) > 1e-6 {
		t.Errorf("inside/outside ratio: got %v, want %v", inside/outside, WalkTurnRate)
	}
}

func TestTrot_TurnScalesInsideStride(t *testing.T) {
	left := Trot(Forward, Left)

	inside := travelRange(left, kinematics.LegLeftHind)
	outside := travelRange(left, kinematics.LegRightHind)

	if math.Abs(inside/outside-TrotTurnRate) > 1e-6 {
		t.Errorf("inside/outside ratio: got %v, want %v", inside/outside, TrotTurnRate)
	}
}

func TestWalk_AtMostOneLegAirborne(t *testing.T) {
	c := Walk(Forward, Straight)
	for i, s := range c.Stances {
		airborne := 0
		for leg := 0; leg < kinematics.NumLegs; leg++ {
			if s[leg].Z < WalkHeight-tolerance {
				airborne++
			}
		}
		if airborne > 1 {
			t.Errorf("stance %d: %d legs airborne, want <= 1", i, airborne)
		}
	}
}

func TestTrot_LiftsDiagonalPairs(t *testing.T) {
	c := Trot(Forward, Straight)

	// Mid-swing of the first section: left-hind and right-front are in
	// the air together.
	mid := c.Stances[trotSubsteps/2]
	if mid[kinematics.LegLeftHind].Z >= TrotHeight {
		t.Error("left hind not lifted in first section")
	}
	if mid[kinematics.LegRightFront].Z >= TrotHeight {
		t.Error("right front not lifted in first section")
	}
	if mid[kinematics.LegLeftFront].Z < TrotHeight-tolerance {
		t.Error("left front lifted in first section, should be grounded")
	}
}

func TestWalk_AllStancesSolvable(t *testing.T) {
	for _, turn := range []Turn{Left, Straight, Right} {
		for _, dir := range []Direction{Forward, Backward} {
			c := Walk(dir, turn)
			for i, s := range c.Stances {
				if _, err := kinematics.SolveBody(s); err != nil {
					t.Fatalf("walk dir=%v turn=%v stance %d unsolvable: %v", dir, turn, i, err)
				}
			}
		}
	}
}

func TestTrot_AllStancesSolvable(t *testing.T) {
	for _, turn := range []Turn{Left, Straight, Right} {
		for _, dir := range []Direction{Forward, Backward} {
			c := Trot(dir, turn)
			for i, s := range c.Stances {
				if _, err := kinematics.SolveBody(s); err != nil {
					t.Fatalf("trot dir=%v turn=%v stance %d unsolvable: %v", dir, turn, i, err)
				}
			}
		}
	}
}
