package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"studiobooking/internal/domain/booking"
	"studiobooking/internal/domain/studio"
	"studiobooking/internal/domain/wizard"
	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/infra"
	"studiobooking/internal/pkg/clock"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/pkg/jwt"
	"studiobooking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound    = errs.New("draft not found or expired")
	ErrStepNotReachable = errs.New("step not reachable")
	ErrStudioNotAllowed = errs.New("studio not allowed for this session")
	ErrAlreadyConfirmed = errs.New("draft already confirmed")
)

type DraftStore interface {
	Save(ctx context.Context, d *wizard.Draft) error
	Find(ctx context.Context, id uuid.UUID) (*wizard.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Session carries the verified identity attached to a wizard call, when the
// caller holds a session token. Nil means not yet verified.
type Session struct {
	Phone      string
	VerifiedBy jwt.VerifiedBy
}

// AdvanceResult is the draft after a step transition; Booking is set only
// when the confirm step executed.
type AdvanceResult struct {
	Draft   *wizard.Draft
	Booking *queries.BookingView
}

type DraftCommands interface {
	Start(ctx context.Context, req reqdto.StartDraftRequest, session *Session) (*wizard.Draft, error)
	Get(ctx context.Context, id uuid.UUID) (*wizard.Draft, error)
	// Advance applies the step payload and moves the draft forward. The
	// confirm step runs the booking mutation and discards the draft.
	Advance(ctx context.Context, id uuid.UUID, req reqdto.AdvanceDraftRequest, session *Session) (*AdvanceResult, error)
	Reset(ctx context.Context, id uuid.UUID) error
}

type draftCommandsImpl struct {
	store    DraftStore
	bookings BookingCommands
	views    queries.BookingQueries
	clock    clock.Clock
}

func NewDraftCommands(
	store DraftStore,
	bookings BookingCommands,
	views queries.BookingQueries,
	clock clock.Clock,
) DraftCommands {
	return &draftCommandsImpl{
		store:    store,
		bookings: bookings,
		views:    views,
		clock:    clock,
	}
}

func (d *draftCommandsImpl) Start(ctx context.Context, req reqdto.StartDraftRequest, session *Session) (*wizard.Draft, error) {
	phone, err := parsePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	var draft *wizard.Draft
	if req.EditBookingID != nil {
		original, err := d.views.GetByID(ctx, *req.EditBookingID)
		if err != nil {
			return nil, err
		}
		if original.Phone != phone {
			return nil, errs.Mark(errs.New("booking belongs to another phone"), errs.ErrNotAuthorized)
		}
		draft = wizard.NewEditDraft(phone, *req.EditBookingID, wizard.Choices{
			SessionType: studio.SessionType(original.SessionType),
			Selector:    studio.Selector(original.Selector),
			Studio:      studio.Studio(original.Studio),
			Date:        original.Date,
			StartTime:   original.StartTime,
			EndTime:     original.EndTime,
		}, d.clock.Now())
		draft.Name = original.Name
		draft.Email = original.Email
	} else {
		draft = wizard.NewDraft(phone, d.clock.Now())
	}

	applySession(draft, session)
	// the phone step is satisfied at start; land on session selection
	draft.Step = wizard.StepSession

	if err := d.store.Save(ctx, draft); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return draft, nil
}

func (d *draftCommandsImpl) Get(ctx context.Context, id uuid.UUID) (*wizard.Draft, error) {
	return d.load(ctx, id)
}

func (d *draftCommandsImpl) Advance(ctx context.Context, id uuid.UUID, req reqdto.AdvanceDraftRequest, session *Session) (*AdvanceResult, error) {
	draft, err := d.load(ctx, id)
	if err != nil {
		return nil, err
	}

	applySession(draft, session)

	target := wizard.Step(req.Step)
	if !target.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown step %q", req.Step), errs.ErrValidation)
	}

	if err := d.applyPayload(draft, target, req); err != nil {
		return nil, err
	}

	if err := draft.CanEnter(target); err != nil {
		return nil, markWizardErr(err)
	}
	if draft.Step == wizard.StepConfirm {
		return nil, errs.Mark(wizard.ErrAlreadyConfirmed, ErrAlreadyConfirmed)
	}
	draft.Step = target
	draft.UpdatedAt = d.clock.Now()

	if target == wizard.StepConfirm {
		return d.confirm(ctx, draft, session)
	}

	if err := d.store.Save(ctx, draft); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &AdvanceResult{Draft: draft}, nil
}

func (d *draftCommandsImpl) Reset(ctx context.Context, id uuid.UUID) error {
	if err := d.store.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// applyPayload writes the fields belonging to the step being entered and
// recomputes the studio recommendation when the inputs feeding it change.
func (d *draftCommandsImpl) applyPayload(draft *wizard.Draft, target wizard.Step, req reqdto.AdvanceDraftRequest) error {
	switch target {
	case wizard.StepParticipants, wizard.StepStudio:
		if req.SessionType != "" {
			st := studio.SessionType(req.SessionType)
			if !st.IsValid() {
				return errs.Mark(errs.Newf("unknown session type %q", req.SessionType), errs.ErrValidation)
			}
			draft.SessionType = st
			draft.SessionDetails = strings.TrimSpace(req.SessionDetails)
		}
		if req.Selector != "" {
			draft.Selector = studio.Selector(req.Selector)
		}
		refreshSuggestion(draft)
		if target == wizard.StepStudio && req.Studio != "" {
			return chooseStudio(draft, req.Studio)
		}
	case wizard.StepTime:
		if req.Studio != "" {
			if err := chooseStudio(draft, req.Studio); err != nil {
				return err
			}
		}
	case wizard.StepReview:
		if req.Date != "" {
			draft.Date = req.Date
			draft.StartTime = req.StartTime
			draft.EndTime = req.EndTime
		}
		if req.Name != "" {
			draft.Name = strings.TrimSpace(req.Name)
		}
		if req.Email != "" {
			draft.Email = strings.TrimSpace(req.Email)
		}
	case wizard.StepOTP, wizard.StepConfirm:
		// no payload; guards decide
	}
	return nil
}

func (d *draftCommandsImpl) confirm(ctx context.Context, draft *wizard.Draft, session *Session) (*AdvanceResult, error) {
	actor := Actor{Phone: draft.Phone}
	if session != nil && session.VerifiedBy == jwt.VerifiedByStaff {
		actor.Staff = true
	}

	slot := reqdto.BookingSlot{
		Studio:         draft.Studio.String(),
		SessionType:    string(draft.SessionType),
		Selector:       string(draft.Selector),
		SessionDetails: draft.SessionDetails,
		Date:           draft.Date,
		StartTime:      draft.StartTime,
		EndTime:        draft.EndTime,
	}

	var (
		view *queries.BookingView
		err  error
	)
	if draft.EditMode && draft.OriginalBookingID != nil {
		view, err = d.bookings.Modify(ctx, *draft.OriginalBookingID, reqdto.ModifyBookingRequest{BookingSlot: slot}, actor)
	} else {
		view, err = d.bookings.Create(ctx, reqdto.CreateBookingRequest{
			BookingSlot: slot,
			Name:        draft.Name,
			Email:       draft.Email,
		}, actor)
	}
	if err != nil {
		// roll the draft back so the customer can pick another slot
		draft.Step = wizard.StepReview
		if saveErr := d.store.Save(ctx, draft); saveErr != nil {
			slog.Warn("failed to roll back draft after confirm failure", "draft_id", draft.ID, "error", saveErr.Error())
		}
		return nil, err
	}

	if delErr := d.store.Delete(ctx, draft.ID); delErr != nil {
		slog.Warn("failed to discard confirmed draft", "draft_id", draft.ID, "error", delErr.Error())
	}
	return &AdvanceResult{Draft: draft, Booking: view}, nil
}

func (d *draftCommandsImpl) load(ctx context.Context, id uuid.UUID) (*wizard.Draft, error) {
	draft, err := d.store.Find(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDraftNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return draft, nil
}

// applySession lifts token-verified identity onto the draft so the confirm
// guard can pass. A token for a different phone is ignored.
func applySession(draft *wizard.Draft, session *Session) {
	if session == nil || session.Phone != draft.Phone {
		return
	}
	switch session.VerifiedBy {
	case jwt.VerifiedByOTP, jwt.VerifiedByStaff:
		draft.OTPVerified = true
	case jwt.VerifiedByDevice:
		draft.DeviceTrusted = true
	}
}

func refreshSuggestion(draft *wizard.Draft) {
	if draft.SessionType == "" {
		return
	}
	s := studio.Recommend(draft.SessionType, draft.Selector)
	draft.Recommended = s.Recommended
	draft.Allowed = s.Allowed
	draft.RatePerHour = s.Rate
	if draft.Studio == "" {
		draft.Studio = s.Recommended
	} else if !s.IsAllowed(draft.Studio) {
		draft.Studio = s.Recommended
		draft.RatePerHour = s.Rate
	} else {
		rate, _ := s.Repriced(draft.Studio, draft.SessionType, draft.Selector)
		draft.RatePerHour = rate
	}
}

func chooseStudio(draft *wizard.Draft, raw string) error {
	st := studio.Studio(raw)
	if !st.IsValid() {
		return errs.Mark(errs.Newf("unknown studio %q", raw), errs.ErrValidation)
	}
	s := studio.Recommend(draft.SessionType, draft.Selector)
	if !s.IsAllowed(st) {
		return errs.Mark(errs.Newf("studio %s not offered for this session", raw), ErrStudioNotAllowed)
	}
	draft.Studio = st
	rate, _ := s.Repriced(st, draft.SessionType, draft.Selector)
	draft.RatePerHour = rate
	return nil
}

func markWizardErr(err error) error {
	switch {
	case errors.Is(err, wizard.ErrNothingChanged):
		return errs.Mark(err, errs.ErrNothingChanged)
	case errors.Is(err, wizard.ErrAlreadyConfirmed):
		return errs.Mark(err, ErrAlreadyConfirmed)
	default:
		return errs.Mark(err, ErrStepNotReachable)
	}
}

func parsePhone(raw string) (string, error) {
	p, err := booking.NewPhone(raw)
	if err != nil {
		return "", errs.Mark(err, errs.ErrValidation)
	}
	return p.String(), nil
}
