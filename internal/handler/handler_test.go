package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/HotelBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockInventorySvc, *hmocks.MockBookingSvc, *hmocks.MockReviewSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	inventorySvc := hmocks.NewMockInventorySvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	reviewSvc := hmocks.NewMockReviewSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(inventorySvc, bookingSvc, reviewSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/rooms/search", h.SearchRooms)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/checkout", h.CheckoutBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/payments/webhook", h.PaymentWebhook)
		api.POST("/reviews", h.CreateReview)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return inventorySvc, bookingSvc, reviewSvc, userSvc, r
}

func testBooking(userID string) *domain.Booking {
	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:           uuid.New().String(),
		UserID:       userID,
		RoomID:       uuid.New().String(),
		RoomNumber:   "101",
		RoomTypeSlug: "plaza-double-city",
		Stay:         domain.StayRange{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 2)},
		Status:       domain.BookingStatusPending,
		TotalCents:   20000,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

// --- Search ---

func TestHandler_SearchRooms_Success(t *testing.T) {
	inventorySvc, _, _, _, r := setupRouter(t)

	results := []domain.SearchResult{
		{
			RoomType:   domain.RoomType{ID: "rt1", Slug: "plaza-double-city", Kind: domain.RoomKindDouble},
			RoomsLeft:  2,
			TotalCents: 24000,
		},
	}
	inventorySvc.EXPECT().Search(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(results, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/rooms/search?check_in=2026-03-02&check_out=2026-03-04", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SearchResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "plaza-double-city", resp[0].Slug)
	assert.Equal(t, int64(24000), resp[0].TotalPriceCents)
}

func TestHandler_SearchRooms_PassesFilter(t *testing.T) {
	inventorySvc, _, _, _, r := setupRouter(t)

	inventorySvc.EXPECT().
		Search(mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.SearchFilter) bool {
			return f.City == "Amsterdam" &&
				f.Kind == domain.RoomKindDeluxe &&
				f.MinCapacity == 2 &&
				f.Smoking != nil && !*f.Smoking
		})).
		Return([]domain.SearchResult{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/rooms/search?check_in=2026-03-02&check_out=2026-03-04&city=Amsterdam&kind=DELUXE&capacity=2&smoking=false", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SearchRooms_MissingDates(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/search", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchRooms_BadKind(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/rooms/search?check_in=2026-03-02&check_out=2026-03-04&kind=PENTHOUSE", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	booking := testBooking(userID)

	bookingSvc.EXPECT().
		Book(mock.Anything, userID, "plaza-double-city", mock.Anything, mock.Anything).
		Return(booking, nil)

	body, _ := json.Marshal(dto.BookRequest{
		UserID:       userID,
		RoomTypeSlug: "plaza-double-city",
		CheckIn:      "2026-03-02",
		CheckOut:     "2026-03-04",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "2026-03-02", resp.CheckIn)
	assert.Equal(t, "2026-03-04", resp.CheckOut)
	assert.Equal(t, int64(20000), resp.TotalPriceCents)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","room_type_slug":"x","check_in":"tomorrow","check_out":"2026-03-04"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_NoRooms(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().
		Book(mock.Anything, userID, "plaza-double-city", mock.Anything, mock.Anything).
		Return(nil, domain.ErrNoRoomsAvailable)

	body, _ := json.Marshal(dto.BookRequest{
		UserID:       userID,
		RoomTypeSlug: "plaza-double-city",
		CheckIn:      "2026-03-02",
		CheckOut:     "2026-03-04",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	booking := testBooking(userID)

	bookingSvc.EXPECT().GetByID(mock.Anything, booking.ID, userID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/bookings/"+booking.ID+"?user_id="+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().GetByID(mock.Anything, bookingID, userID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/bookings/"+bookingID+"?user_id="+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid?user_id="+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckoutBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	userID := uuid.New().String()
	intent := &domain.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}

	bookingSvc.EXPECT().Checkout(mock.Anything, bookingID, userID).Return(intent, nil)

	body, _ := json.Marshal(dto.CheckoutRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/bookings/"+bookingID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123", resp.PaymentIntentID)
	assert.Equal(t, "pi_123_secret", resp.ClientSecret)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, userID).
		Return(domain.Cancellation{RefundCents: 20000, PenaltyApplied: true}, nil)

	body, _ := json.Marshal(dto.CancelRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/bookings/"+bookingID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, int64(20000), resp.RefundCents)
	assert.True(t, resp.PenaltyApplied)
}

func TestHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, userID).
		Return(domain.Cancellation{}, domain.ErrAlreadyCancelled)

	body, _ := json.Marshal(dto.CancelRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/bookings/"+bookingID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{testBooking(userID), testBooking(userID)}

	bookingSvc.EXPECT().ListByUser(mock.Anything, userID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Webhook ---

func TestHandler_PaymentWebhook_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	bookingSvc.EXPECT().HandlePaymentEvent(mock.Anything, payload, "sig_header").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "sig_header")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_BadSignature(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	payload := []byte(`{}`)

	bookingSvc.EXPECT().HandlePaymentEvent(mock.Anything, payload, "bad").
		Return(domain.ErrInvalidSignature)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// no internal detail leaks to the unauthenticated caller
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid payload", resp.Error)
}

// --- Reviews ---

func TestHandler_CreateReview_Success(t *testing.T) {
	_, _, reviewSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	userID := uuid.New().String()
	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Rating:    5,
		Comment:   "great stay",
		CreatedAt: time.Now().UTC(),
	}

	reviewSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(review, nil)

	body, _ := json.Marshal(dto.CreateReviewRequest{
		BookingID: bookingID,
		UserID:    userID,
		Rating:    5,
		Comment:   "great stay",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateReview_RatingOutOfRange(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateReviewRequest{
		BookingID: uuid.New().String(),
		UserID:    uuid.New().String(),
		Rating:    6,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReview_NotConfirmed(t *testing.T) {
	_, _, reviewSvc, _, r := setupRouter(t)

	reviewSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrReviewNotAllowed)

	body, _ := json.Marshal(dto.CreateReviewRequest{
		BookingID: uuid.New().String(),
		UserID:    uuid.New().String(),
		Rating:    4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now().UTC(),
	}

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	users := []*domain.User{
		{ID: uuid.New().String(), Username: "alice", CreatedAt: time.Now().UTC()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
