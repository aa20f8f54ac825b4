package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking, c domain.Cancellation)
	NotifyBookingExpired(ctx context.Context, user *domain.User, b *domain.Booking)
}
