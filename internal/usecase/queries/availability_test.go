//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"studiobooking/internal/domain/schedule"
	"studiobooking/internal/domain/studio"
	"studiobooking/internal/pkg/clock"
	"studiobooking/internal/pkg/config"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/usecase/queries"
	queriesmock "studiobooking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockIntervals *queriesmock.MockBookingIntervalReader
	availability  queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockIntervals = queriesmock.NewMockBookingIntervalReader(s.mockCtrl)
	cfg := config.NewTestConfig().Booking

	var err error
	s.availability, err = queries.NewAvailabilityQueries(
		s.mockIntervals,
		queries.NewSettingsQueries(cfg),
		cfg,
		clock.NewMockClock(fixedNow),
	)
	s.Require().NoError(err)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func mustInterval(s *AvailabilityQueriesTestSuite, start, end string) schedule.Interval {
	from, err := schedule.NewTimeOfDay(start)
	s.Require().NoError(err)
	to, err := schedule.NewTimeOfDay(end)
	s.Require().NoError(err)
	iv, err := schedule.NewInterval(from, to)
	s.Require().NoError(err)
	return iv
}

func (s *AvailabilityQueriesTestSuite) slotStatuses(view *queries.AvailabilityView) map[string]string {
	statuses := make(map[string]string, len(view.Slots))
	for _, slot := range view.Slots {
		statuses[slot.Time] = slot.Status
	}
	return statuses
}

func (s *AvailabilityQueriesTestSuite) TestGetAvailability() {
	weekOut := fixedNow.AddDate(0, 0, 7)

	s.Run("success: booked intervals split the day into slots and slabs", func() {
		booked := []schedule.Interval{
			mustInterval(s, "10:00", "12:00"),
			mustInterval(s, "12:00", "14:00"),
		}
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioB, weekOut, uuid.Nil).
			Return(booked, nil)

		view, err := s.availability.GetAvailability(context.Background(), studio.StudioB, weekOut, uuid.Nil)
		s.NoError(err)
		s.Equal("B", view.Studio)
		s.Equal(weekOut.Format("2006-01-02"), view.Date)
		s.Len(view.Slots, 14)

		statuses := s.slotStatuses(view)
		s.Equal("available", statuses["08:00"])
		s.Equal("available", statuses["09:00"])
		s.Equal("booked", statuses["10:00"])
		s.Equal("booked", statuses["13:00"])
		s.Equal("available", statuses["14:00"])
		s.Equal("available", statuses["21:00"])

		s.Require().Len(view.Slabs, 2)
		s.Equal(queries.SlabView{Start: "08:00", End: "10:00", DurationMinutes: 120}, view.Slabs[0])
		s.Equal(queries.SlabView{Start: "14:00", End: "22:00", DurationMinutes: 480}, view.Slabs[1])
		s.Equal([]string{"C", "B", "A"}, view.Settings.Studios)
	})

	s.Run("success: today's elapsed slots read as past", func() {
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioC, fixedNow, uuid.Nil).
			Return(nil, nil)

		view, err := s.availability.GetAvailability(context.Background(), studio.StudioC, fixedNow, uuid.Nil)
		s.NoError(err)

		statuses := s.slotStatuses(view)
		s.Equal("past", statuses["08:00"])
		s.Equal("past", statuses["12:00"])
		s.Equal("available", statuses["13:00"])

		s.Require().Len(view.Slabs, 1)
		s.Equal(queries.SlabView{Start: "13:00", End: "22:00", DurationMinutes: 540}, view.Slabs[0])
	})

	s.Run("success: the edited booking's own interval is handed to the reader", func() {
		excludeID := uuid.New()
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioA, weekOut, excludeID).
			Return(nil, nil)

		view, err := s.availability.GetAvailability(context.Background(), studio.StudioA, weekOut, excludeID)
		s.NoError(err)
		s.Len(view.Slabs, 1)
	})

	s.Run("error: unknown studio", func() {
		_, err := s.availability.GetAvailability(context.Background(), studio.Studio("Z"), weekOut, uuid.Nil)
		s.ErrorIs(err, errs.ErrValidation)
	})

	s.Run("error: reader failure", func() {
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioB, weekOut, uuid.Nil).
			Return(nil, errs.New("connection refused"))

		_, err := s.availability.GetAvailability(context.Background(), studio.StudioB, weekOut, uuid.Nil)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}

func (s *AvailabilityQueriesTestSuite) TestGetDaySchedule() {
	weekOut := fixedNow.AddDate(0, 0, 7)

	s.Run("success: touching bookings consolidate into one block per run", func() {
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioC, weekOut, uuid.Nil).
			Return([]schedule.Interval{
				mustInterval(s, "10:00", "12:00"),
				mustInterval(s, "12:00", "14:00"),
			}, nil)
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioB, weekOut, uuid.Nil).
			Return([]schedule.Interval{
				mustInterval(s, "15:00", "16:00"),
				mustInterval(s, "18:00", "19:00"),
			}, nil)
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioA, weekOut, uuid.Nil).
			Return(nil, nil)

		view, err := s.availability.GetDaySchedule(context.Background(), weekOut)
		s.NoError(err)
		s.Equal(weekOut.Format("2006-01-02"), view.Date)
		s.Equal([]queries.BookedBlock{{Start: "10:00", End: "14:00"}}, view.Studios["C"])
		s.Equal([]queries.BookedBlock{
			{Start: "15:00", End: "16:00"},
			{Start: "18:00", End: "19:00"},
		}, view.Studios["B"])
		s.Empty(view.Studios["A"])
	})

	s.Run("error: reader failure on any studio aborts", func() {
		s.mockIntervals.EXPECT().
			FindActiveIntervals(gomock.Any(), studio.StudioC, weekOut, uuid.Nil).
			Return(nil, errs.New("connection refused"))

		_, err := s.availability.GetDaySchedule(context.Background(), weekOut)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}

func (s *AvailabilityQueriesTestSuite) TestNewAvailabilityQueries() {
	s.Run("error: malformed open hours in config", func() {
		cfg := config.NewTestConfig().Booking
		cfg.OpenTime = "25:00"

		_, err := queries.NewAvailabilityQueries(
			s.mockIntervals,
			queries.NewSettingsQueries(cfg),
			cfg,
			clock.NewMockClock(fixedNow),
		)
		s.Error(err)
	})
}
