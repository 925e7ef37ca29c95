package commands

import (
	"context"
	"errors"
	"log/slog"

	"studiobooking/internal/domain/booking"
	"studiobooking/internal/domain/studio"
	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/infra"
	"studiobooking/internal/pkg/clock"
	"studiobooking/internal/pkg/config"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a booking mutation. Staff
// actors may operate on any booking; customers only on their own phone's.
type Actor struct {
	Phone string
	Staff bool
}

// BookingRepository is the write-side port. The *Exclusive methods serialize
// per studio/day and fail with a CONFLICT kind when the interval is taken.
type BookingRepository interface {
	CreateExclusive(ctx context.Context, b *booking.Booking) error
	UpdateExclusive(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, reason string) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, actor Actor) (*queries.BookingView, error)
	Modify(ctx context.Context, id uuid.UUID, req reqdto.ModifyBookingRequest, actor Actor) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID, req reqdto.CancelBookingRequest, actor Actor) error
}

type bookingCommandsImpl struct {
	repo   BookingRepository
	views  queries.BookingQueries
	limits booking.Limits
	clock  clock.Clock
}

func NewBookingCommands(
	repo BookingRepository,
	views queries.BookingQueries,
	cfg config.BookingConfig,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:  repo,
		views: views,
		limits: booking.Limits{
			AdvanceBookingDays: cfg.AdvanceBookingDays,
			MinDuration:        cfg.MinDuration(),
			MaxDuration:        cfg.MaxDuration(),
		},
		clock: clock,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, actor Actor) (*queries.BookingView, error) {
	b, err := req.ToDomain(actor.Phone, c.clock.Now(), c.limits)
	if err != nil {
		return nil, markDomainErr(err)
	}

	if err := c.repo.CreateExclusive(ctx, b); err != nil {
		return nil, markRepoErr(err)
	}

	slog.Info("booking created",
		"booking_id", b.ID(),
		"studio", b.Studio().String(),
		"date", b.Date().Format("2006-01-02"),
		"slot", b.Interval().Start().String()+"-"+b.Interval().End().String(),
	)
	return c.views.GetByID(ctx, b.ID())
}

func (c *bookingCommandsImpl) Modify(ctx context.Context, id uuid.UUID, req reqdto.ModifyBookingRequest, actor Actor) (*queries.BookingView, error) {
	b, err := c.loadOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	date, err := req.ParseDate()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	interval, err := req.ParseInterval()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = b.Reschedule(
		studio.Studio(req.Studio),
		studio.SessionType(req.SessionType),
		studio.Selector(req.Selector),
		req.SessionDetails,
		date,
		interval,
		c.clock.Now(),
		c.limits,
	)
	if err != nil {
		return nil, markDomainErr(err)
	}

	if err := c.repo.UpdateExclusive(ctx, b); err != nil {
		return nil, markRepoErr(err)
	}

	slog.Info("booking modified", "booking_id", b.ID())
	return c.views.GetByID(ctx, b.ID())
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, req reqdto.CancelBookingRequest, actor Actor) error {
	b, err := c.loadOwned(ctx, id, actor)
	if err != nil {
		return err
	}

	// An already-cancelled booking is gone from the caller's point of view.
	if b.Status() == booking.StatusCancelled {
		return errs.Mark(errs.New("booking already cancelled"), errs.ErrBookingNotFound)
	}

	if err := b.Cancel(req.Reason, c.clock.Now()); err != nil {
		return markDomainErr(err)
	}

	if err := c.repo.UpdateStatus(ctx, b.ID(), b.Status(), b.CancelReason()); err != nil {
		return markRepoErr(err)
	}

	slog.Info("booking cancelled", "booking_id", b.ID(), "reason", req.Reason)
	return nil
}

func (c *bookingCommandsImpl) loadOwned(ctx context.Context, id uuid.UUID, actor Actor) (*booking.Booking, error) {
	b, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, markRepoErr(err)
	}
	if !actor.Staff && b.Customer().Phone().String() != actor.Phone {
		return nil, errs.Mark(errs.New("booking belongs to another phone"), errs.ErrNotAuthorized)
	}
	return b, nil
}

func markDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrDateOutsideWindow):
		return errs.Mark(err, errs.ErrOutsideWindow)
	case errors.Is(err, booking.ErrDurationOutOfBounds):
		return errs.Mark(err, errs.ErrInvalidDuration)
	case errors.Is(err, booking.ErrNotActive):
		return errs.Mark(err, errs.ErrBookingNotActive)
	case errors.Is(err, booking.ErrStartedAlready):
		return errs.Mark(err, errs.ErrBookingInPast)
	default:
		return errs.Mark(err, errs.ErrValidation)
	}
}

func markRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrSlotConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
