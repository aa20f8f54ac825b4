package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Postgres error codes surfaced as domain conditions.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `b.id, b.user_id, b.room_id, r.number, rt.slug,
	       lower(b.stay_range), upper(b.stay_range), b.status, b.total_cents,
	       b.payment_intent_id, b.cancelled_at, b.refund_cents, b.penalty_applied,
	       b.created_at, b.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.RoomNumber, &b.RoomTypeSlug,
		&b.Stay.CheckIn, &b.Stay.CheckOut, &b.Status, &b.TotalCents,
		&b.PaymentIntentID, &b.CancelledAt, &b.RefundCents, &b.PenaltyApplied,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// Allocate claims one free room of the type and inserts the booking in a
// single transaction. Candidate rooms already locked by a concurrent
// allocation are skipped, never awaited; among the lockable ones the
// lowest room number wins. The exclusion constraint on bookings is the
// storage-level guard behind the same check.
func (r *BookingRepository) Allocate(ctx context.Context, b *domain.Booking, roomTypeID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	pickQuery := `
		SELECT r.id, r.number, rt.slug
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.room_type_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM bookings bk
			WHERE bk.room_id = r.id
			  AND bk.status = ANY($2)
			  AND bk.stay_range && daterange($3::date, $4::date, '[)')
		  )
		ORDER BY r.number
		FOR UPDATE OF r SKIP LOCKED
		LIMIT 1`

	err = tx.QueryRowContext(
		ctx, pickQuery, roomTypeID,
		pq.Array(domain.ActiveStatuses),
		b.Stay.CheckIn, b.Stay.CheckOut,
	).Scan(&b.RoomID, &b.RoomNumber, &b.RoomTypeSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNoRoomsAvailable
		}
		return fmt.Errorf("pick room: %w", err)
	}

	insertQuery := `
		INSERT INTO bookings (id, user_id, room_id, stay_range, status, total_cents, created_at, updated_at)
		VALUES ($1, $2, $3, daterange($4::date, $5::date, '[)'), $6, $7, $8, $9)`

	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.UserID, b.RoomID, b.Stay.CheckIn, b.Stay.CheckOut,
		b.Status, b.TotalCents, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			// Lost a race despite the lock: same user-facing condition.
			return domain.ErrNoRoomsAvailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  JOIN rooms r ON r.id = b.room_id
			  JOIN room_types rt ON rt.id = r.room_type_id
			  WHERE b.id = $1 AND b.user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  JOIN rooms r ON r.id = b.room_id
			  JOIN room_types rt ON rt.id = r.room_type_id
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Cancel moves an active booking to CANCELLED with its refund outcome.
// The status guard in the WHERE clause is the atomic check; on zero rows
// the current status decides which error the caller sees.
func (r *BookingRepository) Cancel(ctx context.Context, id string, c domain.Cancellation, at time.Time) error {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = $3, refund_cents = $4, penalty_applied = $5, updated_at = now()
			  WHERE id = $1 AND status = ANY($6)`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusCancelled, at, c.RefundCents, c.PenaltyApplied,
		pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if scanErr != nil {
			return domain.ErrBookingNotFound
		}
		if scanErr = row.Scan(&status); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		if status == domain.BookingStatusCancelled {
			return domain.ErrAlreadyCancelled
		}
		return domain.ErrInvalidTransition
	}

	return nil
}

func (r *BookingRepository) SetPaymentIntent(ctx context.Context, id, intentID string) error {
	query := `UPDATE bookings
			  SET payment_intent_id = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, intentID, domain.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("set payment intent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set intent rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}

	return nil
}

// ConfirmByIntent is the webhook-side transition: PENDING -> CONFIRMED
// keyed by the provider's intent id. A miss means the id is unknown or
// the booking already left PENDING; duplicate deliveries land here.
func (r *BookingRepository) ConfirmByIntent(ctx context.Context, intentID string) (*domain.Booking, error) {
	query := `UPDATE bookings b
			  SET status = $2, updated_at = now()
			  FROM rooms r
			  JOIN room_types rt ON rt.id = r.room_type_id
			  WHERE b.payment_intent_id = $1
			    AND b.status = $3
			    AND r.id = b.room_id
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		intentID, domain.BookingStatusConfirmed, domain.BookingStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("confirm by intent: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan confirmed booking: %w", err)
	}
	return b, nil
}

// ExpireStale bulk-expires pending bookings older than the cutoff.
// Safe to run concurrently with allocation: it only touches rows already
// PENDING past the timeout, and expired rows no longer hold their room.
func (r *BookingRepository) ExpireStale(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings b
			  SET status = $2, updated_at = now()
			  FROM rooms r
			  JOIN room_types rt ON rt.id = r.room_type_id
			  WHERE b.status = $1
			    AND b.created_at < $3
			    AND r.id = b.room_id
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusExpired, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
