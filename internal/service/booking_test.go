package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo   *mocks.MockBookingRepo
	inventoryRepo *mocks.MockInventoryRepo
	userRepo      *mocks.MockUserRepo
	payments      *mocks.MockPaymentProvider
	notifier      *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo:   mocks.NewMockBookingRepo(t),
		inventoryRepo: mocks.NewMockInventoryRepo(t),
		userRepo:      mocks.NewMockUserRepo(t),
		payments:      mocks.NewMockPaymentProvider(t),
		notifier:      mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(
		m.bookingRepo, m.inventoryRepo, m.userRepo,
		m.payments, m.notifier,
		15*time.Minute, newTestLogger(t),
	)
	return svc, m
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, m := newBookingService(t)

	user := &domain.User{ID: "u1", Username: "alice"}
	roomType := &domain.RoomType{
		ID:             "rt1",
		Slug:           "plaza-double-city",
		BasePriceCents: 10000,
	}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.inventoryRepo.EXPECT().GetRoomTypeBySlug(mock.Anything, "plaza-double-city").Return(roomType, nil)
	m.inventoryRepo.EXPECT().ListPricingRules(mock.Anything, "rt1").Return(nil, nil)
	m.bookingRepo.EXPECT().Allocate(mock.Anything, mock.Anything, "rt1").
		Run(func(_ context.Context, b *domain.Booking, _ string) {
			b.RoomID = "room1"
			b.RoomNumber = "101"
			b.RoomTypeSlug = "plaza-double-city"
		}).
		Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything).Return()

	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	booking, err := svc.Book(context.Background(), "u1", "plaza-double-city", checkIn, checkOut)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, int64(20000), booking.TotalCents)
	assert.Equal(t, "101", booking.RoomNumber)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_InvalidStayRange(t *testing.T) {
	svc, _ := newBookingService(t)

	checkIn := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.Book(context.Background(), "u1", "plaza-double-city", checkIn, checkOut)

	require.ErrorIs(t, err, domain.ErrInvalidStayRange)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	_, err := svc.Book(context.Background(), "ghost", "plaza-double-city", checkIn, checkOut)

	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_NoRoomsAvailable(t *testing.T) {
	svc, m := newBookingService(t)

	user := &domain.User{ID: "u1", Username: "alice"}
	roomType := &domain.RoomType{ID: "rt1", Slug: "plaza-double-city", BasePriceCents: 10000}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.inventoryRepo.EXPECT().GetRoomTypeBySlug(mock.Anything, "plaza-double-city").Return(roomType, nil)
	m.inventoryRepo.EXPECT().ListPricingRules(mock.Anything, "rt1").Return(nil, nil)
	m.bookingRepo.EXPECT().Allocate(mock.Anything, mock.Anything, "rt1").Return(domain.ErrNoRoomsAvailable)

	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	_, err := svc.Book(context.Background(), "u1", "plaza-double-city", checkIn, checkOut)

	require.ErrorIs(t, err, domain.ErrNoRoomsAvailable)
}

func TestBookingService_Cancel_FullRefund(t *testing.T) {
	svc, m := newBookingService(t)

	checkIn := time.Now().UTC().Add(96 * time.Hour)
	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		Status:     domain.BookingStatusConfirmed,
		TotalCents: 30000,
		Stay:       domain.StayRange{CheckIn: checkIn, CheckOut: checkIn.Add(72 * time.Hour)},
	}
	user := &domain.User{ID: "u1", Username: "alice"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1", "u1").Return(booking, nil)
	m.bookingRepo.EXPECT().
		Cancel(mock.Anything, "b1", domain.Cancellation{RefundCents: 30000}, mock.Anything).
		Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().
		NotifyBookingCancelled(mock.Anything, user, booking, domain.Cancellation{RefundCents: 30000}).
		Return()

	result, err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(30000), result.RefundCents)
	assert.False(t, result.PenaltyApplied)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_LateCancellationPenalty(t *testing.T) {
	svc, m := newBookingService(t)

	// inside the 48h notice period: one night of three is withheld
	checkIn := time.Now().UTC().Add(24 * time.Hour)
	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		Status:     domain.BookingStatusConfirmed,
		TotalCents: 30000,
		Stay:       domain.StayRange{CheckIn: checkIn, CheckOut: checkIn.Add(72 * time.Hour)},
	}
	user := &domain.User{ID: "u1", Username: "alice"}

	want := domain.Cancellation{RefundCents: 20000, PenaltyApplied: true}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1", "u1").Return(booking, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", want, mock.Anything).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, booking, want).Return()

	result, err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, want, result)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:     "b1",
		UserID: "u1",
		Status: domain.BookingStatusCancelled,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1", "u1").Return(booking, nil)

	_, err := svc.Cancel(context.Background(), "b1", "u1")

	require.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_ExpiredBooking(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:     "b1",
		UserID: "u1",
		Status: domain.BookingStatusExpired,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1", "u1").Return(booking, nil)

	_, err := svc.Cancel(context.Background(), "b1", "u1")

	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Checkout_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		Status:     domain.BookingStatusPending,
		TotalCents: 20000,
	}
	intent := &domain.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1", "u1").Return(booking, nil)
	m.payments.EXPECT().CreateIntent(mock.Anything, booking).Return(intent, nil)
	m.bookingRepo.EXPECT().SetPaymentIntent(mock.Anything, "b1", "pi_123").Return(nil)

	got, err := svc.Checkout(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, intent, got)
}

func TestBookingService_Checkout_NotPending(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		Status:     domain.BookingStatusConfirmed,
		TotalCents: 20000,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1", "u1").Return(booking, nil)

	_, err := svc.Checkout(context.Background(), "b1", "u1")

	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Checkout_InvalidAmount(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:     "b1",
		UserID: "u1",
		Status: domain.BookingStatusPending,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1", "u1").Return(booking, nil)

	_, err := svc.Checkout(context.Background(), "b1", "u1")

	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBookingService_HandlePaymentEvent_ConfirmsBooking(t *testing.T) {
	svc, m := newBookingService(t)

	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	event := &domain.PaymentEvent{Type: domain.PaymentEventSucceeded, IntentID: "pi_123"}
	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	user := &domain.User{ID: "u1", Username: "alice"}

	m.payments.EXPECT().VerifyEvent(payload, "sig").Return(event, nil)
	m.bookingRepo.EXPECT().ConfirmByIntent(mock.Anything, "pi_123").Return(booking, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, booking).Return()

	err := svc.HandlePaymentEvent(context.Background(), payload, "sig")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_HandlePaymentEvent_UnknownIntentAcked(t *testing.T) {
	svc, m := newBookingService(t)

	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	event := &domain.PaymentEvent{Type: domain.PaymentEventSucceeded, IntentID: "pi_unknown"}

	m.payments.EXPECT().VerifyEvent(payload, "sig").Return(event, nil)
	m.bookingRepo.EXPECT().ConfirmByIntent(mock.Anything, "pi_unknown").Return(nil, domain.ErrBookingNotFound)

	// a redelivery or an already-confirmed intent must be acknowledged
	err := svc.HandlePaymentEvent(context.Background(), payload, "sig")

	require.NoError(t, err)
}

func TestBookingService_HandlePaymentEvent_IgnoresOtherTypes(t *testing.T) {
	svc, m := newBookingService(t)

	payload := []byte(`{"type":"payment_intent.created"}`)
	event := &domain.PaymentEvent{Type: "payment_intent.created"}

	m.payments.EXPECT().VerifyEvent(payload, "sig").Return(event, nil)

	err := svc.HandlePaymentEvent(context.Background(), payload, "sig")

	require.NoError(t, err)
}

func TestBookingService_HandlePaymentEvent_BadSignature(t *testing.T) {
	svc, m := newBookingService(t)

	payload := []byte(`{}`)

	m.payments.EXPECT().VerifyEvent(payload, "bad").Return(nil, domain.ErrInvalidSignature)

	err := svc.HandlePaymentEvent(context.Background(), payload, "bad")

	require.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestBookingService_ExpireStale(t *testing.T) {
	svc, m := newBookingService(t)

	expired := []*domain.Booking{
		{ID: "b1", UserID: "u1", Status: domain.BookingStatusExpired},
		{ID: "b2", UserID: "u2", Status: domain.BookingStatusExpired},
	}
	alice := &domain.User{ID: "u1", Username: "alice"}
	bob := &domain.User{ID: "u2", Username: "bob"}

	m.bookingRepo.EXPECT().
		ExpireStale(mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			return time.Since(cutoff) >= 15*time.Minute
		})).
		Return(expired, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(alice, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(bob, nil)
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, alice, expired[0]).Return()
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, bob, expired[1]).Return()

	got, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ExpireStale_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ExpireStale(context.Background())

	require.Error(t, err)
}
