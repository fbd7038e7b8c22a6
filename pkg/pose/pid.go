package pose

// Feedback gains for the orientation correction term. Only the
// proportional gain is active; the integral and derivative terms exist
// for tuning but ship at zero.
const (
	FeedbackKp = 0.3
	FeedbackKi = 0.0
	FeedbackKd = 0.0
)

// PID is a discrete controller folding an orientation error into the
// commanded angle. With Ki and Kd at zero it reduces to a
// proportional correction.
type PID struct {
	Kp, Ki, Kd float64

	integral float64
	prevErr  float64
	primed   bool
}

// NewFeedbackPID returns the controller used for roll/pitch
// correction.
func NewFeedbackPID() PID {
	return PID{Kp: FeedbackKp, Ki: FeedbackKi, Kd: FeedbackKd}
}

// Update returns the correction for one target/measured pair.
func (p *PID) Update(target, measured float64) float64 {
	err := target - measured

	p.integral += err
	var deriv float64
	if p.primed {
		deriv = err - p.prevErr
	}
	p.prevErr = err
	p.primed = true

	return p.Kp*err + p.Ki*p.integral + p.Kd*deriv
}

// Reset clears the accumulated state.
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.primed = false
}
