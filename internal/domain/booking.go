package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusExpired   BookingStatus = "EXPIRED"
)

// ActiveStatuses are the statuses that hold a room against availability.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	RoomID          string        `json:"room_id"`
	RoomNumber      string        `json:"room_number"`
	RoomTypeSlug    string        `json:"room_type_slug"`
	Stay            StayRange     `json:"stay"`
	Status          BookingStatus `json:"status"`
	TotalCents      int64         `json:"total_price_cents"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`
	RefundCents     *int64        `json:"refund_cents,omitempty"`
	PenaltyApplied  bool          `json:"penalty_applied"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Cancellation is the outcome of cancelling a booking under the
// 48-hour penalty policy.
type Cancellation struct {
	RefundCents    int64 `json:"refund_cents"`
	PenaltyApplied bool  `json:"penalty_applied"`
}

// CancellationNoticePeriod is the pre-check-in threshold below which a
// one-night penalty is withheld from the refund.
const CancellationNoticePeriod = 48 * time.Hour

// RefundFor computes the refund for cancelling the booking at the given
// moment. At or beyond the notice period the refund is the full price;
// inside it one night's rate is withheld.
func (b *Booking) RefundFor(now time.Time) Cancellation {
	if b.Stay.CheckIn.Sub(now) >= CancellationNoticePeriod {
		return Cancellation{RefundCents: b.TotalCents}
	}

	nights := b.Stay.Nights()
	oneNight := b.TotalCents
	if nights > 0 {
		oneNight = b.TotalCents / int64(nights)
	}

	refund := b.TotalCents - oneNight
	if refund < 0 {
		refund = 0
	}
	return Cancellation{RefundCents: refund, PenaltyApplied: true}
}

// Cancellable reports whether the booking may transition to CANCELLED.
func (b *Booking) Cancellable() error {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed:
		return nil
	case BookingStatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrInvalidTransition
	}
}
