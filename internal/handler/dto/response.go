package dto

import (
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type SearchResultResponse struct {
	RoomTypeID      string   `json:"room_type_id"`
	Slug            string   `json:"slug"`
	HotelName       string   `json:"hotel_name"`
	City            string   `json:"city"`
	Kind            string   `json:"kind"`
	View            string   `json:"view"`
	Capacity        int      `json:"capacity"`
	Smoking         bool     `json:"smoking"`
	Amenities       []string `json:"amenities"`
	RoomsLeft       int      `json:"rooms_left"`
	TotalPriceCents int64    `json:"total_price_cents"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	RoomNumber      string  `json:"room_number"`
	RoomTypeSlug    string  `json:"room_type_slug"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Status          string  `json:"status"`
	TotalPriceCents int64   `json:"total_price_cents"`
	RefundCents     *int64  `json:"refund_cents,omitempty"`
	PenaltyApplied  bool    `json:"penalty_applied,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type CancelResponse struct {
	Status         string `json:"status"`
	RefundCents    int64  `json:"refund_cents"`
	PenaltyApplied bool   `json:"penalty_applied"`
}

type CheckoutResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSearchResultResponse(r domain.SearchResult) SearchResultResponse {
	return SearchResultResponse{
		RoomTypeID:      r.RoomType.ID,
		Slug:            r.RoomType.Slug,
		HotelName:       r.RoomType.HotelName,
		City:            r.RoomType.City,
		Kind:            string(r.RoomType.Kind),
		View:            string(r.RoomType.View),
		Capacity:        r.RoomType.Capacity,
		Smoking:         r.RoomType.Smoking,
		Amenities:       r.RoomType.Amenities,
		RoomsLeft:       r.RoomsLeft,
		TotalPriceCents: r.TotalCents,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		RoomNumber:      b.RoomNumber,
		RoomTypeSlug:    b.RoomTypeSlug,
		CheckIn:         b.Stay.CheckIn.Format(dateLayout),
		CheckOut:        b.Stay.CheckOut.Format(dateLayout),
		Status:          string(b.Status),
		TotalPriceCents: b.TotalCents,
		RefundCents:     b.RefundCents,
		PenaltyApplied:  b.PenaltyApplied,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}
	return resp
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
