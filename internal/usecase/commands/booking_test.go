//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"studiobooking/internal/domain/booking"
	"studiobooking/internal/domain/schedule"
	"studiobooking/internal/domain/studio"
	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/infra"
	"studiobooking/internal/pkg/clock"
	"studiobooking/internal/pkg/config"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/usecase/commands"
	"studiobooking/internal/usecase/queries"
	"studiobooking/tests/common/builder"
	commandsmock "studiobooking/tests/mock/commands"
	queriesmock "studiobooking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *commandsmock.MockBookingRepository
	mockQueries *queriesmock.MockBookingQueries
	clock       *clock.MockClock
	bookings    commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(fixedNow)
	s.bookings = commands.NewBookingCommands(s.mockRepo, s.mockQueries, config.NewTestConfig().Booking, s.clock)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// existingBooking reconstructs a stored confirmed booking one week out.
func (s *BookingCommandsTestSuite) existingBooking(id uuid.UUID, phone string, date time.Time) *booking.Booking {
	p, err := booking.NewPhone(phone)
	s.Require().NoError(err)
	customer, err := booking.NewCustomer(p, "Sam Carter", "sam@example.com")
	s.Require().NoError(err)
	start, err := schedule.NewTimeOfDay("10:00")
	s.Require().NoError(err)
	end, err := schedule.NewTimeOfDay("12:00")
	s.Require().NoError(err)
	interval, err := schedule.NewInterval(start, end)
	s.Require().NoError(err)

	return booking.ReconstructBooking(
		id, studio.StudioB, studio.SessionBand, studio.EquipDrumAmpsGtr, "",
		date, interval, booking.StatusConfirmed, 400, 800, customer, "",
		fixedNow.Add(-time.Hour), fixedNow.Add(-time.Hour),
	)
}

func (s *BookingCommandsTestSuite) requestFor(date time.Time) *builder.BookingBuilder {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Date = date.Format("2006-01-02")
	})
}

func cancelReq(reason string) reqdto.CancelBookingRequest {
	return reqdto.CancelBookingRequest{Reason: reason}
}

func (s *BookingCommandsTestSuite) TestCreate() {
	actor := commands.Actor{Phone: "+15550001111"}
	weekOut := fixedNow.AddDate(0, 0, 7)

	s.Run("success: persists under the conflict guard and returns the view", func() {
		b := s.requestFor(weekOut)
		req := b.BuildCreateRequestDTO()
		view := b.BuildView()

		var createdID uuid.UUID
		s.mockRepo.EXPECT().CreateExclusive(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, nb *booking.Booking) error {
				createdID = nb.ID()
				s.Equal(studio.StudioB, nb.Studio())
				s.Equal(booking.StatusPending, nb.Status())
				s.Equal(actor.Phone, nb.Customer().Phone().String())
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
				s.Equal(createdID, id)
				return view, nil
			})

		result, err := s.bookings.Create(context.Background(), req, actor)
		s.NoError(err)
		s.Equal(view, result)
	})

	s.Run("error: interval taken maps to a slot conflict", func() {
		req := s.requestFor(weekOut).BuildCreateRequestDTO()
		s.mockRepo.EXPECT().CreateExclusive(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("booking overlaps", errs.New("exclusion"), infra.KindConflict))

		_, err := s.bookings.Create(context.Background(), req, actor)
		s.ErrorIs(err, errs.ErrSlotConflict)
	})

	s.Run("error: date beyond the advance window", func() {
		req := s.requestFor(fixedNow.AddDate(0, 0, 45)).BuildCreateRequestDTO()
		_, err := s.bookings.Create(context.Background(), req, actor)
		s.ErrorIs(err, errs.ErrOutsideWindow)
	})

	s.Run("error: date in the past", func() {
		req := s.requestFor(fixedNow.AddDate(0, 0, -1)).BuildCreateRequestDTO()
		_, err := s.bookings.Create(context.Background(), req, actor)
		s.ErrorIs(err, errs.ErrOutsideWindow)
	})

	s.Run("error: duration above the maximum", func() {
		req := s.requestFor(weekOut).With(func(b *builder.BookingBuilder) {
			b.StartTime = "08:00"
			b.EndTime = "17:00"
		}).BuildCreateRequestDTO()
		_, err := s.bookings.Create(context.Background(), req, actor)
		s.ErrorIs(err, errs.ErrInvalidDuration)
	})
}

func (s *BookingCommandsTestSuite) TestModify() {
	actor := commands.Actor{Phone: "+15550001111"}
	weekOut := fixedNow.AddDate(0, 0, 7)
	bookingID := uuid.New()

	s.Run("success: reschedules and re-reads the view", func() {
		b := s.requestFor(weekOut).With(func(b *builder.BookingBuilder) {
			b.StartTime = "14:00"
			b.EndTime = "16:00"
		})
		req := b.BuildModifyRequestDTO()
		view := b.BuildView()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.existingBooking(bookingID, actor.Phone, weekOut), nil)
		s.mockRepo.EXPECT().UpdateExclusive(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ub *booking.Booking) error {
				s.Equal(bookingID, ub.ID())
				s.Equal("14:00", ub.Interval().Start().String())
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(view, nil)

		result, err := s.bookings.Modify(context.Background(), bookingID, req, actor)
		s.NoError(err)
		s.Equal(view, result)
	})

	s.Run("error: another customer's booking is off limits", func() {
		req := s.requestFor(weekOut).BuildModifyRequestDTO()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.existingBooking(bookingID, "+15559998888", weekOut), nil)

		_, err := s.bookings.Modify(context.Background(), bookingID, req, actor)
		s.ErrorIs(err, errs.ErrNotAuthorized)
	})

	s.Run("success: staff may reschedule any booking", func() {
		staff := commands.Actor{Phone: "+15550009999", Staff: true}
		b := s.requestFor(weekOut)
		req := b.BuildModifyRequestDTO()
		view := b.BuildView()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.existingBooking(bookingID, "+15559998888", weekOut), nil)
		s.mockRepo.EXPECT().UpdateExclusive(gomock.Any(), gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(view, nil)

		_, err := s.bookings.Modify(context.Background(), bookingID, req, staff)
		s.NoError(err)
	})

	s.Run("error: new slot already taken", func() {
		req := s.requestFor(weekOut).BuildModifyRequestDTO()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.existingBooking(bookingID, actor.Phone, weekOut), nil)
		s.mockRepo.EXPECT().UpdateExclusive(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("booking overlaps", errs.New("exclusion"), infra.KindConflict))

		_, err := s.bookings.Modify(context.Background(), bookingID, req, actor)
		s.ErrorIs(err, errs.ErrSlotConflict)
	})

	s.Run("error: unknown booking id", func() {
		req := s.requestFor(weekOut).BuildModifyRequestDTO()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.bookings.Modify(context.Background(), bookingID, req, actor)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	actor := commands.Actor{Phone: "+15550001111"}
	weekOut := fixedNow.AddDate(0, 0, 7)
	bookingID := uuid.New()

	s.Run("success: marks the booking cancelled with the reason", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.existingBooking(bookingID, actor.Phone, weekOut), nil)
		s.mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), bookingID, booking.StatusCancelled, "band split up").
			Return(nil)

		err := s.bookings.Cancel(context.Background(), bookingID, cancelReq("band split up"), actor)
		s.NoError(err)
	})

	s.Run("error: cancelling an already started booking", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.existingBooking(bookingID, actor.Phone, fixedNow.AddDate(0, 0, -1)), nil)

		err := s.bookings.Cancel(context.Background(), bookingID, cancelReq(""), actor)
		s.ErrorIs(err, errs.ErrBookingInPast)
	})

	s.Run("error: cancelling twice reads as not found", func() {
		cancelled := s.existingBooking(bookingID, actor.Phone, weekOut)
		s.Require().NoError(cancelled.Cancel("first", fixedNow))
		s.mockRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(cancelled, nil)

		err := s.bookings.Cancel(context.Background(), bookingID, cancelReq("again"), actor)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}
