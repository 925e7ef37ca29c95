//go:build unit

package booking_test

import (
	"testing"
	"time"

	"studiobooking/internal/domain/booking"
	"studiobooking/internal/domain/schedule"
	"studiobooking/internal/domain/studio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLimits = booking.Limits{
	AdvanceBookingDays: 30,
	MinDuration:        time.Hour,
	MaxDuration:        8 * time.Hour,
}

func interval(t *testing.T, start, end string) schedule.Interval {
	t.Helper()
	s, err := schedule.NewTimeOfDay(start)
	require.NoError(t, err)
	e, err := schedule.NewTimeOfDay(end)
	require.NoError(t, err)
	iv, err := schedule.NewInterval(s, e)
	require.NoError(t, err)
	return iv
}

func customer(t *testing.T) booking.Customer {
	t.Helper()
	phone, err := booking.NewPhone("+821012345678")
	require.NoError(t, err)
	c, err := booking.NewCustomer(phone, "Jina Park", "jina@example.com")
	require.NoError(t, err)
	return c
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("sets pending status and prices from the rate table", func(t *testing.T) {
		b, err := booking.NewBooking(
			studio.StudioA, studio.SessionBand, studio.EquipFullRig, "album rehearsal",
			date, interval(t, "14:00", "16:00"), customer(t), now, testLimits,
		)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, 600, b.RatePerHour())
		assert.Equal(t, 1200, b.TotalAmount())
	})

	cases := []struct {
		name     string
		studio   studio.Studio
		session  studio.SessionType
		date     time.Time
		interval schedule.Interval
		errIs    error
	}{
		{
			name:     "unknown studio",
			studio:   "D",
			session:  studio.SessionKaraoke,
			date:     date,
			interval: interval(t, "14:00", "16:00"),
			errIs:    booking.ErrInvalidStudio,
		},
		{
			name:     "unknown session type",
			studio:   studio.StudioC,
			session:  "ballet",
			date:     date,
			interval: interval(t, "14:00", "16:00"),
			errIs:    booking.ErrInvalidSessionType,
		},
		{
			name:     "date before today",
			studio:   studio.StudioC,
			session:  studio.SessionKaraoke,
			date:     time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
			interval: interval(t, "14:00", "16:00"),
			errIs:    booking.ErrDateOutsideWindow,
		},
		{
			name:     "date beyond advance window",
			studio:   studio.StudioC,
			session:  studio.SessionKaraoke,
			date:     time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
			interval: interval(t, "14:00", "16:00"),
			errIs:    booking.ErrDateOutsideWindow,
		},
		{
			name:     "duration below minimum",
			studio:   studio.StudioC,
			session:  studio.SessionKaraoke,
			date:     date,
			interval: interval(t, "14:00", "14:30"),
			errIs:    booking.ErrDurationOutOfBounds,
		},
		{
			name:     "duration above maximum",
			studio:   studio.StudioC,
			session:  studio.SessionKaraoke,
			date:     date,
			interval: interval(t, "08:00", "20:00"),
			errIs:    booking.ErrDurationOutOfBounds,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewBooking(
				tc.studio, tc.session, "", "",
				tc.date, tc.interval, customer(t), now, testLimits,
			)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBooking_Cancel(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	newBooking := func(t *testing.T) *booking.Booking {
		b, err := booking.NewBooking(
			studio.StudioC, studio.SessionKaraoke, studio.Attendees1to5, "",
			date, interval(t, "14:00", "16:00"), customer(t), now, testLimits,
		)
		require.NoError(t, err)
		return b
	}

	t.Run("active future booking cancels", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel("schedule change", now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, "schedule change", b.CancelReason())
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel("", now))
		assert.ErrorIs(t, b.Cancel("", now), booking.ErrNotActive)
	})

	t.Run("started booking cannot cancel", func(t *testing.T) {
		b := newBooking(t)
		started := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, b.Cancel("", started), booking.ErrStartedAlready)
	})
}

func TestBooking_Reschedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	b, err := booking.NewBooking(
		studio.StudioC, studio.SessionKaraoke, studio.Attendees1to5, "",
		date, interval(t, "14:00", "16:00"), customer(t), now, testLimits,
	)
	require.NoError(t, err)
	id := b.ID()

	newDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.Reschedule(
		studio.StudioB, studio.SessionKaraoke, studio.Attendees6to10, "",
		newDate, interval(t, "18:00", "21:00"), now, testLimits,
	))

	assert.Equal(t, id, b.ID(), "reschedule preserves identity")
	assert.Equal(t, studio.StudioB, b.Studio())
	assert.Equal(t, 350, b.RatePerHour())
	assert.Equal(t, 1050, b.TotalAmount())

	require.NoError(t, b.Cancel("", now))
	assert.ErrorIs(t, b.Reschedule(
		studio.StudioB, studio.SessionKaraoke, studio.Attendees6to10, "",
		newDate, interval(t, "18:00", "21:00"), now, testLimits,
	), booking.ErrNotActive)
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "plain digits", raw: "01012345678", want: "01012345678"},
		{name: "e164", raw: "+821012345678", want: "+821012345678"},
		{name: "separators stripped", raw: "010-1234-5678", want: "01012345678"},
		{name: "too short", raw: "12345", errIs: booking.ErrInvalidPhone},
		{name: "letters", raw: "not-a-phone", errIs: booking.ErrInvalidPhone},
		{name: "empty", raw: "", errIs: booking.ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := booking.NewPhone(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}
