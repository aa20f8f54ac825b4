package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

// sign produces a Stripe-Signature header value for the payload, the way
// the provider signs deliveries: HMAC-SHA256 over "timestamp.payload".
func sign(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeProvider_CreateIntent_RejectsZeroAmount(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	_, err := p.CreateIntent(context.Background(), &domain.Booking{ID: "b1"})

	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestStripeProvider_VerifyEvent_Succeeded(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)
	header := sign(payload, testWebhookSecret, time.Now())

	event, err := p.VerifyEvent(payload, header)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentEventSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.IntentID)
}

func TestStripeProvider_VerifyEvent_ForeignAPIVersion(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	// Deliveries carry the account's pinned API version, which rarely
	// matches the SDK's. A valid signature must still verify.
	payload := []byte(`{"api_version":"2023-10-16","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)
	header := sign(payload, testWebhookSecret, time.Now())

	event, err := p.VerifyEvent(payload, header)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentEventSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.IntentID)
}

func TestStripeProvider_VerifyEvent_OtherType(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	payload := []byte(`{"type":"payment_intent.created","data":{"object":{"id":"pi_123"}}}`)
	header := sign(payload, testWebhookSecret, time.Now())

	event, err := p.VerifyEvent(payload, header)

	require.NoError(t, err)
	assert.Equal(t, "payment_intent.created", event.Type)
	assert.Empty(t, event.IntentID)
}

func TestStripeProvider_VerifyEvent_WrongSecret(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)
	header := sign(payload, "whsec_other_secret", time.Now())

	_, err := p.VerifyEvent(payload, header)

	require.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestStripeProvider_VerifyEvent_MissingHeader(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	_, err := p.VerifyEvent([]byte(`{}`), "")

	require.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestStripeProvider_VerifyEvent_StaleTimestamp(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)
	header := sign(payload, testWebhookSecret, time.Now().Add(-time.Hour))

	_, err := p.VerifyEvent(payload, header)

	require.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestStripeProvider_VerifyEvent_MalformedBody(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testWebhookSecret)

	payload := []byte(`not json at all`)
	header := sign(payload, testWebhookSecret, time.Now())

	_, err := p.VerifyEvent(payload, header)

	require.ErrorIs(t, err, domain.ErrMalformedPayload)
}
