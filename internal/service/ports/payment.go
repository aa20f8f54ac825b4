package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// PaymentProvider is the external payment collaborator: it creates
// payment intents for pending bookings and verifies signed webhook
// events.
type PaymentProvider interface {
	// CreateIntent rejects non-positive totals with ErrInvalidAmount.
	CreateIntent(ctx context.Context, b *domain.Booking) (*domain.PaymentIntent, error)

	// VerifyEvent checks the payload signature and parses the event.
	// Fails with ErrInvalidSignature or ErrMalformedPayload.
	VerifyEvent(payload []byte, signature string) (*domain.PaymentEvent, error)
}
