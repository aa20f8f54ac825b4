// Package payment adapts the Stripe SDK to the payment provider port:
// intent creation for pending bookings and signed webhook verification.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type StripeProvider struct {
	webhookSecret string
}

func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{webhookSecret: webhookSecret}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, b *domain.Booking) (*domain.PaymentIntent, error) {
	if b.TotalCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(b.TotalCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", b.ID)
	params.AddMetadata("user_id", b.UserID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create intent: %w", err)
	}

	return &domain.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// VerifyEvent checks the Stripe-Signature header against the endpoint
// secret and extracts the intent id. Verification failures never expose
// internal detail to the unauthenticated caller.
func (p *StripeProvider) VerifyEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	// Accounts pin their own API version; the signature is what proves
	// authenticity, not the version label inside the payload.
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		if isSignatureError(err) {
			return nil, domain.ErrInvalidSignature
		}
		return nil, domain.ErrMalformedPayload
	}

	out := &domain.PaymentEvent{Type: string(event.Type)}

	if out.Type == domain.PaymentEventSucceeded {
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, domain.ErrMalformedPayload
		}
		out.IntentID = intent.ID
	}

	return out, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrTooOld) ||
		errors.Is(err, webhook.ErrNoValidSignature)
}
