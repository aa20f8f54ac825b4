package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
}

func NewReviewService(reviewRepo ports.ReviewRepo, bookingRepo ports.BookingRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
	}
}

// Create stores the guest's review. Only the booking's owner can review,
// only once the stay was confirmed, and only once per booking.
func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrReviewNotAllowed
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}
