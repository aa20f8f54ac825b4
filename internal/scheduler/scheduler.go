package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler drives the expiry sweep on a fixed interval. The sweep is
// idempotent, so overlapping or missed ticks are harmless.
type Scheduler struct {
	bookingService bookingExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.bookingService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("room_number", b.RoomNumber),
		)
	}
}
