package queries

import (
	"context"
	"time"

	"studiobooking/internal/infra"
	"studiobooking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByPhone(ctx context.Context, phone string, limit int) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByPhone(ctx context.Context, phone string, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByPhone(ctx context.Context, phone string, limit int) ([]*BookingListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	items, err := q.repo.FindByPhone(ctx, phone, int32(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

// FormatDate is the wire date layout shared by views and request parsing.
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }
