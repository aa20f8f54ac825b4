package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/pricing"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo   ports.BookingRepo
	inventoryRepo ports.InventoryRepo
	userRepo      ports.UserRepo
	payments      ports.PaymentProvider
	notifier      ports.BookingNotifier
	holdTTL       time.Duration
	logger        logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	inventoryRepo ports.InventoryRepo,
	userRepo ports.UserRepo,
	payments ports.PaymentProvider,
	notifier ports.BookingNotifier,
	holdTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
		payments:      payments,
		notifier:      notifier,
		holdTTL:       holdTTL,
		logger:        logger,
	}
}

// Book allocates one room of the requested type for the stay and creates
// a PENDING booking priced for the whole range. The room pick and the
// insert run atomically in the repository; a NoRoomsAvailable outcome is
// an expected race under contention and callers may simply retry.
func (s *BookingService) Book(ctx context.Context, userID, roomTypeSlug string, checkIn, checkOut time.Time) (*domain.Booking, error) {
	stay, err := domain.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	roomType, err := s.inventoryRepo.GetRoomTypeBySlug(ctx, roomTypeSlug)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}

	rules, err := s.inventoryRepo.ListPricingRules(ctx, roomType.ID)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}

	// The price is mandatory: a booking is never created without one.
	total, err := pricing.Quote(roomType, rules, stay)
	if err != nil {
		return nil, fmt.Errorf("quote stay: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		Stay:       stay,
		Status:     domain.BookingStatusPending,
		TotalCents: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.bookingRepo.Allocate(ctx, booking, roomType.ID); err != nil {
		return nil, fmt.Errorf("allocate room: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_number", booking.RoomNumber),
		logger.String("room_type", roomTypeSlug),
		logger.String("user_id", userID),
		logger.Int64("total_cents", booking.TotalCents),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id, userID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id, userID)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// Cancel applies the refund policy and moves the booking to CANCELLED.
// Within 48 hours of check-in one night's rate is withheld.
func (s *BookingService) Cancel(ctx context.Context, id, userID string) (domain.Cancellation, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id, userID)
	if err != nil {
		return domain.Cancellation{}, fmt.Errorf("get booking: %w", err)
	}

	if err = booking.Cancellable(); err != nil {
		return domain.Cancellation{}, err
	}

	now := time.Now().UTC()
	result := booking.RefundFor(now)

	if err = s.bookingRepo.Cancel(ctx, id, result, now); err != nil {
		return domain.Cancellation{}, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.Int64("refund_cents", result.RefundCents),
		logger.Any("penalty_applied", result.PenaltyApplied),
	)

	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), user, booking, result)
	}

	return result, nil
}

// Checkout creates a payment intent for a pending booking and stores the
// provider's id so the webhook can find the booking later.
func (s *BookingService) Checkout(ctx context.Context, id, userID string) (*domain.PaymentIntent, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	if booking.TotalCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	intent, err := s.payments.CreateIntent(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	if err = s.bookingRepo.SetPaymentIntent(ctx, id, intent.ID); err != nil {
		return nil, fmt.Errorf("store payment intent: %w", err)
	}

	s.logger.Info("payment intent created",
		logger.String("booking_id", id),
		logger.String("intent_id", intent.ID),
	)

	return intent, nil
}

// HandlePaymentEvent verifies a webhook delivery and confirms the
// matching pending booking. Unknown or already-confirmed intent ids are
// acknowledged without error so the provider stops redelivering.
func (s *BookingService) HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := s.payments.VerifyEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("verify event: %w", err)
	}

	if event.Type != domain.PaymentEventSucceeded {
		s.logger.Debug("ignoring payment event",
			logger.String("type", event.Type),
		)
		return nil
	}

	booking, err := s.bookingRepo.ConfirmByIntent(ctx, event.IntentID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Warn("payment succeeded for unknown or non-pending intent",
				logger.String("intent_id", event.IntentID),
			)
			return nil
		}
		return fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("room_number", booking.RoomNumber),
		logger.String("intent_id", event.IntentID),
	)

	if user, uerr := s.userRepo.GetByID(ctx, booking.UserID); uerr == nil {
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, booking)
	}

	return nil
}

// ExpireStale releases rooms held by pending bookings older than the
// hold TTL. Idempotent; safe to run concurrently with allocation.
func (s *BookingService) ExpireStale(ctx context.Context) ([]*domain.Booking, error) {
	cutoff := time.Now().UTC().Add(-s.holdTTL)

	expired, err := s.bookingRepo.ExpireStale(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale bookings expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for expiry notification",
				logger.String("user_id", b.UserID),
			)
			continue
		}

		s.notifier.NotifyBookingExpired(ctx, user, b)
	}
}
