package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type InventorySvc interface {
	Search(ctx context.Context, checkIn, checkOut time.Time, filter domain.SearchFilter) ([]domain.SearchResult, error)
}

type BookingSvc interface {
	Book(ctx context.Context, userID, roomTypeSlug string, checkIn, checkOut time.Time) (*domain.Booking, error)
	GetByID(ctx context.Context, id, userID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id, userID string) (domain.Cancellation, error)
	Checkout(ctx context.Context, id, userID string) (*domain.PaymentIntent, error)
	HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	inventoryService InventorySvc
	bookingService   BookingSvc
	reviewService    ReviewSvc
	userService      UserSvc
}

func NewHandler(inventoryService InventorySvc, bookingService BookingSvc, reviewService ReviewSvc, userService UserSvc) *Handler {
	return &Handler{
		inventoryService: inventoryService,
		bookingService:   bookingService,
		reviewService:    reviewService,
		userService:      userService,
	}
}

// Rooms

func (h *Handler) SearchRooms(c *ginext.Context) {
	checkIn, err := time.Parse(dateLayout, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_in, expected YYYY-MM-DD",
		})
		return
	}

	checkOut, err := time.Parse(dateLayout, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_out, expected YYYY-MM-DD",
		})
		return
	}

	filter, err := parseSearchFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	results, err := h.inventoryService.Search(c.Request.Context(), checkIn, checkOut, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SearchResultResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.ToSearchResultResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func parseSearchFilter(c *ginext.Context) (domain.SearchFilter, error) {
	filter := domain.SearchFilter{
		City:    c.Query("city"),
		Amenity: c.Query("amenity"),
	}

	if v := c.Query("kind"); v != "" {
		kind, err := domain.ParseRoomKind(v)
		if err != nil {
			return filter, err
		}
		filter.Kind = kind
	}

	if v := c.Query("view"); v != "" {
		view, err := domain.ParseViewType(v)
		if err != nil {
			return filter, err
		}
		filter.View = view
	}

	if v := c.Query("capacity"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil || capacity < 1 {
			return filter, errors.New("invalid capacity")
		}
		filter.MinCapacity = capacity
	}

	if v := c.Query("min_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			return filter, errors.New("invalid min_price_cents")
		}
		filter.MinPriceCents = cents
	}

	if v := c.Query("max_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			return filter, errors.New("invalid max_price_cents")
		}
		filter.MaxPriceCents = cents
	}

	if v := c.Query("smoking"); v != "" {
		smoking, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("invalid smoking, expected true or false")
		}
		filter.Smoking = &smoking
	}

	return filter, nil
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_in, expected YYYY-MM-DD",
		})
		return
	}

	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_out, expected YYYY-MM-DD",
		})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), req.UserID, req.RoomTypeSlug, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	userID := c.Query("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CheckoutBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	intent, err := h.bookingService.Checkout(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cancellation, err := h.bookingService.Cancel(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Status:         string(domain.BookingStatusCancelled),
		RefundCents:    cancellation.RefundCents,
		PenaltyApplied: cancellation.PenaltyApplied,
	})
}

// Payments

// PaymentWebhook receives provider callbacks. The body must be read raw:
// signature verification runs over the exact bytes the provider signed.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "failed to read body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")

	if err := h.bookingService.HandlePaymentEvent(c.Request.Context(), payload, signature); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReviewInput{
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	review, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomTypeNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoRoomsAvailable),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrReviewNotAllowed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStayRange),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrMalformedPayload):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
