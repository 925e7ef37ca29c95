package repository

import (
	"context"
	"errors"
	"time"

	"studiobooking/internal/domain/booking"
	"studiobooking/internal/domain/schedule"
	"studiobooking/internal/domain/studio"
	"studiobooking/internal/infra"
	"studiobooking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes that mean the interval lost the race: unique_violation
// and exclusion_violation (the bookings_no_overlap constraint).
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateExclusive inserts the booking if and only if no active booking for
// the same studio/date overlaps its interval. Commits are serialized per
// (studio, date) with a transaction-scoped advisory lock, so of two
// concurrent requests for the same interval exactly one succeeds; the
// bookings_no_overlap exclusion constraint backstops the check.
func (r *BookingRepository) CreateExclusive(ctx context.Context, b *booking.Booking) error {
	return r.withSerializedDay(ctx, b.Studio(), b.Date(), func(tx pgx.Tx) error {
		taken, err := r.overlapExists(ctx, tx, b.Studio(), b.Date(), b.Interval(), uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return infra.WrapRepoErr("slot already booked", nil, infra.KindConflict)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO bookings (
				id, studio, session_type, selector, session_details,
				date, start_min, end_min, status,
				rate_per_hour, total_amount,
				phone, name, email, cancel_reason,
				created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,now(),now())`,
			b.ID(), b.Studio().String(), string(b.SessionType()), string(b.Selector()), b.SessionDetails(),
			b.Date(), b.Interval().Start().Minutes(), b.Interval().End().Minutes(), b.Status().String(),
			b.RatePerHour(), b.TotalAmount(),
			b.Customer().Phone().String(), b.Customer().Name(), b.Customer().Email(), b.CancelReason(),
		)
		if err != nil {
			return wrapWriteErr("failed to insert booking", err)
		}
		return nil
	})
}

// UpdateExclusive replaces the booking's fields in place under the same
// serialization, excluding the booking itself from the overlap check.
func (r *BookingRepository) UpdateExclusive(ctx context.Context, b *booking.Booking) error {
	return r.withSerializedDay(ctx, b.Studio(), b.Date(), func(tx pgx.Tx) error {
		taken, err := r.overlapExists(ctx, tx, b.Studio(), b.Date(), b.Interval(), b.ID())
		if err != nil {
			return err
		}
		if taken {
			return infra.WrapRepoErr("slot already booked", nil, infra.KindConflict)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE bookings SET
				studio = $2, session_type = $3, selector = $4, session_details = $5,
				date = $6, start_min = $7, end_min = $8,
				rate_per_hour = $9, total_amount = $10,
				updated_at = now()
			WHERE id = $1`,
			b.ID(), b.Studio().String(), string(b.SessionType()), string(b.Selector()), b.SessionDetails(),
			b.Date(), b.Interval().Start().Minutes(), b.Interval().End().Minutes(),
			b.RatePerHour(), b.TotalAmount(),
		)
		if err != nil {
			return wrapWriteErr("failed to update booking", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		}
		return nil
	})
}

// UpdateStatus persists a status transition (cancel, complete, no-show).
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, reason string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $2, cancel_reason = $3, updated_at = now()
		WHERE id = $1`,
		id, status.String(), reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBooking+` WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

// FindActiveIntervals returns the active booking intervals for one
// studio/date, the overlap input for availability resolution.
func (r *BookingRepository) FindActiveIntervals(ctx context.Context, st studio.Studio, date time.Time, excludeID uuid.UUID) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT start_min, end_min FROM bookings
		WHERE studio = $1 AND date = $2
		  AND status IN ('pending','confirmed')
		  AND id <> $3
		ORDER BY start_min`,
		st.String(), date, excludeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking intervals", err)
	}
	defer rows.Close()

	var out []schedule.Interval
	for rows.Next() {
		var startMin, endMin int
		if err := rows.Scan(&startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking interval", err)
		}
		iv, err := intervalFromMinutes(startMin, endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking interval", err)
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking intervals", err)
	}
	return out, nil
}

func (r *BookingRepository) withSerializedDay(ctx context.Context, st studio.Studio, date time.Time, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// lock key is (studio, date); released at commit/rollback
	lockKey := st.String() + ":" + date.Format("2006-01-02")
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return infra.WrapRepoErr("failed to acquire day lock", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapWriteErr("failed to commit booking transaction", err)
	}
	return nil
}

func (r *BookingRepository) overlapExists(ctx context.Context, tx pgx.Tx, st studio.Studio, date time.Time, iv schedule.Interval, excludeID uuid.UUID) (bool, error) {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT count(*) FROM bookings
		WHERE studio = $1 AND date = $2
		  AND status IN ('pending','confirmed')
		  AND start_min < $4 AND end_min > $3
		  AND id <> $5`,
		st.String(), date, iv.Start().Minutes(), iv.End().Minutes(), excludeID,
	).Scan(&count)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlap", err)
	}
	return count > 0, nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return infra.WrapRepoErr("slot already booked", err, infra.KindConflict)
		case pgUniqueViolation:
			return infra.WrapRepoErr("duplicate booking", err, infra.KindDuplicateKey)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

func intervalFromMinutes(startMin, endMin int) (schedule.Interval, error) {
	start, err := schedule.TimeOfDayFromMinutes(startMin)
	if err != nil {
		return schedule.Interval{}, err
	}
	end, err := schedule.TimeOfDayFromMinutes(endMin)
	if err != nil {
		return schedule.Interval{}, err
	}
	return schedule.NewInterval(start, end)
}

const selectBooking = `
	SELECT id, studio, session_type, selector, session_details,
	       date, start_min, end_min, status,
	       rate_per_hour, total_amount,
	       phone, name, email, cancel_reason,
	       created_at, updated_at
	FROM bookings`

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id                        uuid.UUID
		studioStr, sessionTypeStr string
		selectorStr, details      string
		date                      time.Time
		startMin, endMin          int
		statusStr                 string
		ratePerHour, totalAmount  int
		phoneStr, nameStr, email  string
		cancelReason              string
		createdAt, updatedAt      time.Time
	)
	if err := row.Scan(
		&id, &studioStr, &sessionTypeStr, &selectorStr, &details,
		&date, &startMin, &endMin, &statusStr,
		&ratePerHour, &totalAmount,
		&phoneStr, &nameStr, &email, &cancelReason,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	iv, err := intervalFromMinutes(startMin, endMin)
	if err != nil {
		return nil, err
	}
	phone, err := booking.NewPhone(phoneStr)
	if err != nil {
		return nil, err
	}
	customer, err := booking.NewCustomer(phone, nameStr, email)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id,
		studio.Studio(studioStr),
		studio.SessionType(sessionTypeStr),
		studio.Selector(selectorStr),
		details,
		date,
		iv,
		booking.Status(statusStr),
		ratePerHour, totalAmount,
		customer,
		cancelReason,
		createdAt, updatedAt,
	), nil
}
