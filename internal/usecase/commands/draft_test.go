//go:build unit

package commands_test

import (
	"context"
	"testing"

	"studiobooking/internal/domain/studio"
	"studiobooking/internal/domain/wizard"
	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/infra"
	"studiobooking/internal/pkg/clock"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/pkg/jwt"
	"studiobooking/internal/usecase/commands"
	"studiobooking/internal/usecase/queries"
	"studiobooking/tests/common/builder"
	commandsmock "studiobooking/tests/mock/commands"
	queriesmock "studiobooking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockStore    *commandsmock.MockDraftStore
	mockBookings *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	clock        *clock.MockClock
	drafts       commands.DraftCommands
}

func (s *DraftCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = commandsmock.NewMockDraftStore(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(fixedNow)
	s.drafts = commands.NewDraftCommands(s.mockStore, s.mockBookings, s.mockQueries, s.clock)
}

func (s *DraftCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftCommandsSuite(t *testing.T) {
	suite.Run(t, new(DraftCommandsTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("draft not found", errs.New("no rows"), infra.KindNotFound)
}

func (s *DraftCommandsTestSuite) TestStart() {
	s.Run("success: fresh draft lands on the session step", func() {
		req := reqdto.StartDraftRequest{Phone: "+1 (555) 000-1111"}
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *wizard.Draft) error {
				s.Equal(wizard.StepSession, d.Step)
				s.Equal("+15550001111", d.Phone)
				s.False(d.OTPVerified)
				s.False(d.EditMode)
				s.Equal(fixedNow, d.CreatedAt)
				return nil
			})

		draft, err := s.drafts.Start(context.Background(), req, nil)
		s.NoError(err)
		s.Equal(wizard.StepSession, draft.Step)
	})

	s.Run("success: matching session token pre-verifies the draft", func() {
		req := reqdto.StartDraftRequest{Phone: "+15550001111"}
		session := &commands.Session{Phone: "+15550001111", VerifiedBy: jwt.VerifiedByDevice}
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		draft, err := s.drafts.Start(context.Background(), req, session)
		s.NoError(err)
		s.True(draft.DeviceTrusted)
		s.False(draft.OTPVerified)
	})

	s.Run("success: edit mode seeds the draft from the booking", func() {
		bookingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()
		req := reqdto.StartDraftRequest{Phone: view.Phone, EditBookingID: &bookingID}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(view, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		draft, err := s.drafts.Start(context.Background(), req, nil)
		s.NoError(err)
		s.True(draft.EditMode)
		s.Equal(&bookingID, draft.OriginalBookingID)
		s.Equal(studio.Studio(view.Studio), draft.Studio)
		s.Equal(view.Date, draft.Date)
		s.Equal(view.Name, draft.Name)
		s.Equal(wizard.StepSession, draft.Step)
		s.False(draft.Changed())
	})

	s.Run("error: editing someone else's booking", func() {
		bookingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()
		req := reqdto.StartDraftRequest{Phone: "+15559998888", EditBookingID: &bookingID}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(view, nil)

		_, err := s.drafts.Start(context.Background(), req, nil)
		s.ErrorIs(err, errs.ErrNotAuthorized)
	})

	s.Run("error: malformed phone", func() {
		_, err := s.drafts.Start(context.Background(), reqdto.StartDraftRequest{Phone: "not-a-phone"}, nil)
		s.ErrorIs(err, errs.ErrValidation)
	})
}

func (s *DraftCommandsTestSuite) TestGet() {
	draftID := uuid.New()

	s.Run("success", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
		}).BuildDraft()
		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)

		draft, err := s.drafts.Get(context.Background(), draftID)
		s.NoError(err)
		s.Equal(stored, draft)
	})

	s.Run("error: missing or expired draft", func() {
		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(nil, notFoundErr())

		_, err := s.drafts.Get(context.Background(), draftID)
		s.ErrorIs(err, commands.ErrDraftNotFound)
	})
}

func (s *DraftCommandsTestSuite) TestAdvance() {
	draftID := uuid.New()

	s.Run("success: session step payload moves to studio and recommends one", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepSession
			b.SessionType = ""
			b.Selector = ""
			b.Studio = ""
		}).BuildDraft()
		req := reqdto.AdvanceDraftRequest{
			Step:        string(wizard.StepStudio),
			SessionType: string(studio.SessionBand),
			Selector:    string(studio.EquipDrumAmpsGtr),
		}

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.drafts.Advance(context.Background(), draftID, req, nil)
		s.NoError(err)
		s.Equal(wizard.StepStudio, result.Draft.Step)
		s.Equal(studio.StudioB, result.Draft.Recommended)
		s.Equal([]studio.Studio{studio.StudioB, studio.StudioA}, result.Draft.Allowed)
		s.Equal(studio.StudioB, result.Draft.Studio)
		s.Nil(result.Booking)
		s.Equal(fixedNow, result.Draft.UpdatedAt)
	})

	s.Run("error: unknown step name", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.ID = draftID }).BuildDraft()
		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)

		_, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: "checkout"}, nil)
		s.ErrorIs(err, errs.ErrValidation)
	})

	s.Run("error: studio outside the allowed set for the session", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepStudio
		}).BuildDraft()
		req := reqdto.AdvanceDraftRequest{Step: string(wizard.StepTime), Studio: "C"}

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)

		_, err := s.drafts.Advance(context.Background(), draftID, req, nil)
		s.ErrorIs(err, commands.ErrStudioNotAllowed)
	})

	s.Run("error: review needs a chosen time slot", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepTime
			b.Date = ""
			b.StartTime = ""
			b.EndTime = ""
		}).BuildDraft()

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)

		_, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepReview)}, nil)
		s.ErrorIs(err, commands.ErrStepNotReachable)
	})

	s.Run("error: no-op edit is rejected before the otp step", func() {
		bookingID := uuid.New()
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepReview
		})
		stored := b.BuildDraft()
		stored.EditMode = true
		stored.OriginalBookingID = &bookingID
		orig := stored.CurrentChoices()
		stored.Original = &orig

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)

		_, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepOTP)}, nil)
		s.ErrorIs(err, errs.ErrNothingChanged)
	})

	s.Run("error: confirmed draft cannot advance again", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepConfirm
			b.OTPVerified = true
		}).BuildDraft()

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)

		_, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepConfirm)}, nil)
		s.ErrorIs(err, commands.ErrAlreadyConfirmed)
	})

	s.Run("success: confirm creates the booking and discards the draft", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepOTP
			b.OTPVerified = true
		}).BuildDraft()
		view := builder.NewBookingBuilder().BuildView()

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), commands.Actor{Phone: stored.Phone}).
			DoAndReturn(func(_ context.Context, req reqdto.CreateBookingRequest, _ commands.Actor) (*queries.BookingView, error) {
				s.Equal(stored.Studio.String(), req.Studio)
				s.Equal(stored.Date, req.Date)
				s.Equal(stored.Name, req.Name)
				return view, nil
			})
		s.mockStore.EXPECT().Delete(gomock.Any(), draftID).Return(nil)

		result, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepConfirm)}, nil)
		s.NoError(err)
		s.Equal(wizard.StepConfirm, result.Draft.Step)
		s.Equal(view, result.Booking)
	})

	s.Run("success: confirm in edit mode modifies the original booking", func() {
		bookingID := uuid.New()
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepOTP
			b.OTPVerified = true
			b.StartTime = "14:00"
			b.EndTime = "16:00"
		}).BuildDraft()
		stored.EditMode = true
		stored.OriginalBookingID = &bookingID
		stored.Original = &wizard.Choices{
			SessionType: stored.SessionType,
			Selector:    stored.Selector,
			Studio:      stored.Studio,
			Date:        stored.Date,
			StartTime:   "10:00",
			EndTime:     "12:00",
		}
		view := builder.NewBookingBuilder().BuildView()

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)
		s.mockBookings.EXPECT().Modify(gomock.Any(), bookingID, gomock.Any(), commands.Actor{Phone: stored.Phone}).
			Return(view, nil)
		s.mockStore.EXPECT().Delete(gomock.Any(), draftID).Return(nil)

		result, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepConfirm)}, nil)
		s.NoError(err)
		s.Equal(view, result.Booking)
	})

	s.Run("error: confirm failure rolls the draft back to review", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepOTP
			b.OTPVerified = true
		}).BuildDraft()
		conflict := errs.Mark(errs.New("booking overlaps"), errs.ErrSlotConflict)

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflict)
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *wizard.Draft) error {
				s.Equal(wizard.StepReview, d.Step)
				return nil
			})

		_, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepConfirm)}, nil)
		s.ErrorIs(err, errs.ErrSlotConflict)
	})

	s.Run("success: trusted-device session satisfies the confirm guard", func() {
		stored := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ID = draftID
			b.Step = wizard.StepReview
		}).BuildDraft()
		session := &commands.Session{Phone: stored.Phone, VerifiedBy: jwt.VerifiedByDevice}
		view := builder.NewBookingBuilder().BuildView()

		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(stored, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(view, nil)
		s.mockStore.EXPECT().Delete(gomock.Any(), draftID).Return(nil)

		result, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepConfirm)}, session)
		s.NoError(err)
		s.True(result.Draft.DeviceTrusted)
	})

	s.Run("error: draft gone", func() {
		s.mockStore.EXPECT().Find(gomock.Any(), draftID).Return(nil, notFoundErr())

		_, err := s.drafts.Advance(context.Background(), draftID, reqdto.AdvanceDraftRequest{Step: string(wizard.StepStudio)}, nil)
		s.ErrorIs(err, commands.ErrDraftNotFound)
	})
}

func (s *DraftCommandsTestSuite) TestReset() {
	draftID := uuid.New()

	s.Run("success", func() {
		s.mockStore.EXPECT().Delete(gomock.Any(), draftID).Return(nil)
		s.NoError(s.drafts.Reset(context.Background(), draftID))
	})

	s.Run("error: store failure surfaces as a database error", func() {
		s.mockStore.EXPECT().Delete(gomock.Any(), draftID).Return(errs.New("redis down"))
		s.ErrorIs(s.drafts.Reset(context.Background(), draftID), errs.ErrDatabaseOperationFailed)
	})
}
