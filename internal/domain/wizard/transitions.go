package wizard

type transition struct {
	from Step
	to   Step
	// when gates conditional edges; nil means always
	when func(*Draft) bool
}

// transitionsTable is the wizard's directed step graph. Session types that
// carry a fixed recommendation skip the participants step entirely; a
// verified draft skips the otp step.
var transitionsTable = []transition{
	{from: StepPhone, to: StepSession},

	{from: StepSession, to: StepStudio, when: func(d *Draft) bool { return d.SessionType.SkipsParticipants() }},
	{from: StepSession, to: StepParticipants},

	{from: StepParticipants, to: StepStudio},
	{from: StepStudio, to: StepTime},
	{from: StepTime, to: StepReview},

	{from: StepReview, to: StepConfirm, when: func(d *Draft) bool { return d.Verified() }},
	{from: StepReview, to: StepOTP},

	{from: StepOTP, to: StepConfirm},
}

// Next returns the step that follows the draft's current step along the
// first transition whose gate passes.
func (d *Draft) Next() (Step, bool) {
	for _, tr := range transitionsTable {
		if tr.from != d.Step {
			continue
		}
		if tr.when != nil && !tr.when(d) {
			continue
		}
		return tr.to, true
	}
	return "", false
}

// CanEnter checks a step's guard against the draft without moving.
func (d *Draft) CanEnter(step Step) error {
	guard, ok := guards[step]
	if !ok {
		return ErrStepNotReachable
	}
	return guard(d)
}

// ReachableSteps lists every step whose guard currently passes, in wizard
// order. The presentation layer uses this to enable/disable navigation.
func (d *Draft) ReachableSteps() []Step {
	order := []Step{StepPhone, StepSession, StepParticipants, StepStudio, StepTime, StepReview, StepOTP, StepConfirm}
	var out []Step
	for _, s := range order {
		if d.CanEnter(s) == nil {
			out = append(out, s)
		}
	}
	return out
}
