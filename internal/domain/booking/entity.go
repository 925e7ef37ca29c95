package booking

import (
	"errors"
	"time"

	"studiobooking/internal/domain/schedule"
	"studiobooking/internal/domain/studio"

	"github.com/google/uuid"
)

var (
	ErrInvalidStudio       = errors.New("invalid studio")
	ErrInvalidSessionType  = errors.New("invalid session type")
	ErrDateOutsideWindow   = errors.New("date outside advance booking window")
	ErrDurationOutOfBounds = errors.New("duration outside allowed bounds")
	ErrNotActive           = errors.New("booking is not active")
	ErrStartedAlready      = errors.New("booking start time has passed")
)

// Limits are the guard's accepted bounds, sourced from configuration.
type Limits struct {
	AdvanceBookingDays int
	MinDuration        time.Duration
	MaxDuration        time.Duration
}

type Booking struct {
	id             uuid.UUID
	studio         studio.Studio
	sessionType    studio.SessionType
	selector       studio.Selector
	sessionDetails string
	date           time.Time
	interval       schedule.Interval
	status         Status
	ratePerHour    int
	totalAmount    int
	customer       Customer
	cancelReason   string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking validates and assembles a pending booking. Overlap with other
// bookings is not checked here; that is the conflict guard's job at commit
// time.
func NewBooking(
	st studio.Studio,
	sessionType studio.SessionType,
	selector studio.Selector,
	sessionDetails string,
	date time.Time,
	interval schedule.Interval,
	customer Customer,
	now time.Time,
	limits Limits,
) (*Booking, error) {
	if !st.IsValid() {
		return nil, ErrInvalidStudio
	}
	if !sessionType.IsValid() {
		return nil, ErrInvalidSessionType
	}
	if err := validateDate(date, now, limits.AdvanceBookingDays); err != nil {
		return nil, err
	}
	dur := interval.Duration()
	if dur < limits.MinDuration || dur > limits.MaxDuration {
		return nil, ErrDurationOutOfBounds
	}

	rate, _ := studio.Rate(st, sessionType, selector)
	hours := dur.Hours()

	return &Booking{
		id:             uuid.New(),
		studio:         st,
		sessionType:    sessionType,
		selector:       selector,
		sessionDetails: sessionDetails,
		date:           time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		interval:       interval,
		status:         StatusPending,
		ratePerHour:    rate,
		totalAmount:    int(float64(rate) * hours),
		customer:       customer,
	}, nil
}

func validateDate(date, now time.Time, advanceDays int) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return ErrDateOutsideWindow
	}
	if day.After(today.AddDate(0, 0, advanceDays)) {
		return ErrDateOutsideWindow
	}
	return nil
}

func ReconstructBooking(
	id uuid.UUID,
	st studio.Studio,
	sessionType studio.SessionType,
	selector studio.Selector,
	sessionDetails string,
	date time.Time,
	interval schedule.Interval,
	status Status,
	ratePerHour, totalAmount int,
	customer Customer,
	cancelReason string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		studio:         st,
		sessionType:    sessionType,
		selector:       selector,
		sessionDetails: sessionDetails,
		date:           date,
		interval:       interval,
		status:         status,
		ratePerHour:    ratePerHour,
		totalAmount:    totalAmount,
		customer:       customer,
		cancelReason:   cancelReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Reschedule replaces the slot/pricing fields in place for edit flows,
// preserving id and customer identity.
func (b *Booking) Reschedule(
	st studio.Studio,
	sessionType studio.SessionType,
	selector studio.Selector,
	sessionDetails string,
	date time.Time,
	interval schedule.Interval,
	now time.Time,
	limits Limits,
) error {
	if !b.status.IsActive() {
		return ErrNotActive
	}
	if !st.IsValid() {
		return ErrInvalidStudio
	}
	if err := validateDate(date, now, limits.AdvanceBookingDays); err != nil {
		return err
	}
	dur := interval.Duration()
	if dur < limits.MinDuration || dur > limits.MaxDuration {
		return ErrDurationOutOfBounds
	}

	rate, _ := studio.Rate(st, sessionType, selector)

	b.studio = st
	b.sessionType = sessionType
	b.selector = selector
	b.sessionDetails = sessionDetails
	b.date = date
	b.interval = interval
	b.ratePerHour = rate
	b.totalAmount = int(float64(rate) * dur.Hours())
	return nil
}

// Cancel transitions an active, not-yet-started booking to cancelled.
func (b *Booking) Cancel(reason string, now time.Time) error {
	if !b.status.IsActive() {
		return ErrNotActive
	}
	if !b.interval.Start().On(b.date).After(now) {
		return ErrStartedAlready
	}
	b.status = StatusCancelled
	b.cancelReason = reason
	return nil
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) Studio() studio.Studio           { return b.studio }
func (b *Booking) SessionType() studio.SessionType { return b.sessionType }
func (b *Booking) Selector() studio.Selector       { return b.selector }
func (b *Booking) SessionDetails() string          { return b.sessionDetails }
func (b *Booking) Date() time.Time                 { return b.date }
func (b *Booking) Interval() schedule.Interval     { return b.interval }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) RatePerHour() int                { return b.ratePerHour }
func (b *Booking) TotalAmount() int                { return b.totalAmount }
func (b *Booking) Customer() Customer              { return b.customer }
func (b *Booking) CancelReason() string            { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }
