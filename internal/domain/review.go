package domain

import "time"

// Review is the guest's feedback on a completed booking, at most one
// per booking.
type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	BookingID string
	UserID    string
	Rating    int
	Comment   string
}
