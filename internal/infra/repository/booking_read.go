package repository

import (
	"context"
	"time"

	"studiobooking/internal/infra"
	"studiobooking/internal/pkg/pgconv"
	"studiobooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

// bookingRow is the raw scan target; timestamps and minute offsets are
// reshaped into wire form when mapped to a view.
type bookingRow struct {
	ID             uuid.UUID
	Studio         string
	SessionType    string
	Selector       string
	SessionDetails string
	Date           time.Time
	StartMin       int
	EndMin         int
	Status         string
	RatePerHour    int
	TotalAmount    int
	Phone          string
	Name           string
	Email          string
	CancelReason   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type BookingViewRepository struct {
	db *pgxpool.Pool
}

func NewBookingViewRepository(db *pgxpool.Pool) *BookingViewRepository {
	return &BookingViewRepository{db: db}
}

func (r *BookingViewRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var row bookingRow
	err := r.db.QueryRow(ctx, selectBooking+` WHERE id = $1`, id).Scan(
		&row.ID, &row.Studio, &row.SessionType, &row.Selector, &row.SessionDetails,
		&row.Date, &row.StartMin, &row.EndMin, &row.Status,
		&row.RatePerHour, &row.TotalAmount,
		&row.Phone, &row.Name, &row.Email, &row.CancelReason,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return toBookingView(row)
}

func (r *BookingViewRepository) FindByPhone(ctx context.Context, phone string, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, studio, session_type, date, start_min, end_min, status, total_amount
		FROM bookings
		WHERE phone = $1
		ORDER BY date DESC, start_min DESC
		LIMIT $2`,
		phone, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by phone", err)
	}
	defer rows.Close()

	var out []*queries.BookingListItem
	for rows.Next() {
		var row bookingRow
		if err := rows.Scan(
			&row.ID, &row.Studio, &row.SessionType, &row.Date,
			&row.StartMin, &row.EndMin, &row.Status, &row.TotalAmount,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item, err := toBookingListItem(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings by phone", err)
	}
	return out, nil
}

func toBookingView(row bookingRow) (*queries.BookingView, error) {
	var view queries.BookingView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map booking view", err)
	}
	view.Date = row.Date.Format("2006-01-02")
	iv, err := intervalFromMinutes(row.StartMin, row.EndMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking interval", err)
	}
	view.StartTime = iv.Start().String()
	view.EndTime = iv.End().String()
	return &view, nil
}

func toBookingListItem(row bookingRow) (*queries.BookingListItem, error) {
	var item queries.BookingListItem
	if err := copier.Copy(&item, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map booking list item", err)
	}
	item.Date = row.Date.Format("2006-01-02")
	iv, err := intervalFromMinutes(row.StartMin, row.EndMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking interval", err)
	}
	item.StartTime = iv.Start().String()
	item.EndTime = iv.End().String()
	return &item, nil
}
