package dto

type BookRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	RoomTypeSlug string `json:"room_type_slug" binding:"required"`
	CheckIn      string `json:"check_in" binding:"required"`
	CheckOut     string `json:"check_out" binding:"required"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CheckoutRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	UserID    string `json:"user_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
