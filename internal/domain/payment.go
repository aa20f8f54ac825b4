package domain

// PaymentIntent is the provider-side payment created for a pending
// booking; the client secret is handed to the front end to complete
// the charge.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

const PaymentEventSucceeded = "payment_intent.succeeded"

// PaymentEvent is a verified webhook event from the payment provider.
type PaymentEvent struct {
	Type     string `json:"type"`
	IntentID string `json:"intent_id"`
}
