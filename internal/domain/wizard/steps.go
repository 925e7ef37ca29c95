package wizard

import "errors"

type Step string

const (
	StepPhone        Step = "phone"
	StepSession      Step = "session"
	StepParticipants Step = "participants"
	StepStudio       Step = "studio"
	StepTime         Step = "time"
	StepReview       Step = "review"
	StepOTP          Step = "otp"
	StepConfirm      Step = "confirm"
)

var (
	ErrStepNotReachable = errors.New("step not reachable from current draft")
	ErrNothingChanged   = errors.New("draft does not differ from original booking")
	ErrAlreadyConfirmed = errors.New("draft already confirmed")
)

func (s Step) IsValid() bool {
	switch s {
	case StepPhone, StepSession, StepParticipants, StepStudio,
		StepTime, StepReview, StepOTP, StepConfirm:
		return true
	default:
		return false
	}
}

// guards are the per-step prerequisites: a step may be entered only when the
// draft carries the fields the step needs.
var guards = map[Step]func(*Draft) error{
	StepPhone:   func(*Draft) error { return nil },
	StepSession: requires(func(d *Draft) bool { return d.Phone != "" }),
	StepParticipants: requires(func(d *Draft) bool {
		return d.SessionType != "" && !d.SessionType.SkipsParticipants()
	}),
	StepStudio: requires(func(d *Draft) bool {
		if d.SessionType == "" {
			return false
		}
		// types without a participants step arrive with a precomputed
		// recommendation; everything else needs the selector first
		return d.SessionType.SkipsParticipants() || d.Selector != ""
	}),
	StepTime:   requires(func(d *Draft) bool { return d.Studio != "" }),
	StepReview: requires(func(d *Draft) bool { return d.Date != "" && d.StartTime != "" && d.EndTime != "" }),
	StepOTP: func(d *Draft) error {
		if d.Date == "" || d.StartTime == "" || d.EndTime == "" {
			return ErrStepNotReachable
		}
		// no-op edits are rejected before any OTP is requested
		if !d.Changed() {
			return ErrNothingChanged
		}
		return nil
	},
	StepConfirm: func(d *Draft) error {
		if !d.Verified() {
			return ErrStepNotReachable
		}
		if !d.Changed() {
			return ErrNothingChanged
		}
		return nil
	},
}

func requires(ok func(*Draft) bool) func(*Draft) error {
	return func(d *Draft) error {
		if !ok(d) {
			return ErrStepNotReachable
		}
		return nil
	}
}
