package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type ReviewRepo interface {
	// Create inserts the review; ErrAlreadyReviewed when the booking
	// already has one.
	Create(ctx context.Context, review *domain.Review) error
}
