package ports

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingRepo interface {
	// Allocate claims one free room of the given type for the booking's
	// stay range and inserts the booking, all within a single atomic
	// transaction. On success the booking's RoomID, RoomNumber and
	// RoomTypeSlug are filled in. Returns ErrNoRoomsAvailable when every
	// candidate room is either booked or claimed by a concurrent
	// allocation.
	Allocate(ctx context.Context, b *domain.Booking, roomTypeID string) error

	GetByID(ctx context.Context, id, userID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)

	// Cancel atomically moves an active booking to CANCELLED with the
	// given refund outcome.
	Cancel(ctx context.Context, id string, c domain.Cancellation, at time.Time) error

	SetPaymentIntent(ctx context.Context, id, intentID string) error

	// ConfirmByIntent moves the booking holding the intent id from
	// PENDING to CONFIRMED. Returns ErrBookingNotFound when no pending
	// booking holds the id (unknown or already confirmed).
	ConfirmByIntent(ctx context.Context, intentID string) (*domain.Booking, error)

	// ExpireStale bulk-expires PENDING bookings created before the
	// cutoff and returns them.
	ExpireStale(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
}
