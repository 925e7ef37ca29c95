package request

import (
	"strings"
	"time"

	"studiobooking/internal/domain/booking"
	"studiobooking/internal/domain/schedule"
	"studiobooking/internal/domain/studio"
)

// BookingSlot is the shared shape of a requested studio/time selection.
type BookingSlot struct {
	Studio         string `json:"studio" binding:"required,oneof=A B C"`
	SessionType    string `json:"session_type" binding:"required"`
	Selector       string `json:"selector,omitempty"`
	SessionDetails string `json:"session_details,omitempty"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
}

func (s BookingSlot) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", s.Date)
}

func (s BookingSlot) ParseInterval() (schedule.Interval, error) {
	start, err := schedule.NewTimeOfDay(s.StartTime)
	if err != nil {
		return schedule.Interval{}, err
	}
	end, err := schedule.NewTimeOfDay(s.EndTime)
	if err != nil {
		return schedule.Interval{}, err
	}
	return schedule.NewInterval(start, end)
}

type CreateBookingRequest struct {
	BookingSlot
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
}

// ToDomain assembles a pending booking for the phone the caller's session
// token was minted for.
func (r CreateBookingRequest) ToDomain(phone string, now time.Time, limits booking.Limits) (*booking.Booking, error) {
	p, err := booking.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	customer, err := booking.NewCustomer(p, strings.TrimSpace(r.Name), strings.TrimSpace(r.Email))
	if err != nil {
		return nil, err
	}
	date, err := r.ParseDate()
	if err != nil {
		return nil, err
	}
	interval, err := r.ParseInterval()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(
		studio.Studio(r.Studio),
		studio.SessionType(r.SessionType),
		studio.Selector(r.Selector),
		strings.TrimSpace(r.SessionDetails),
		date,
		interval,
		customer,
		now,
		limits,
	)
}

type ModifyBookingRequest struct {
	BookingSlot
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" binding:"max=500"`
}
