// Package memory holds a mutex-guarded in-memory booking store that
// implements the same port as the Postgres repository, including the
// no-overlap invariant the database enforces with its exclusion
// constraint. Tests use it to exercise allocation under contention
// without a running server.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

var _ ports.BookingRepo = (*BookingStore)(nil)

type room struct {
	id         string
	roomTypeID string
	number     string
	slug       string
}

type BookingStore struct {
	mu       sync.Mutex
	rooms    []room
	bookings map[string]*domain.Booking
	byRoom   map[string][]*domain.Booking // per-room range index
	byIntent map[string]*domain.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[string]*domain.Booking),
		byRoom:   make(map[string][]*domain.Booking),
		byIntent: make(map[string]*domain.Booking),
	}
}

// AddRoom registers a physical room. Rooms are kept sorted by number so
// allocation picks deterministically.
func (s *BookingStore) AddRoom(id, roomTypeID, number, slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms = append(s.rooms, room{id: id, roomTypeID: roomTypeID, number: number, slug: slug})
	sort.Slice(s.rooms, func(i, j int) bool { return s.rooms[i].number < s.rooms[j].number })
}

func (s *BookingStore) Allocate(_ context.Context, b *domain.Booking, roomTypeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.roomTypeID != roomTypeID {
			continue
		}
		if s.roomBusy(r.id, b.Stay) {
			continue
		}

		b.RoomID = r.id
		b.RoomNumber = r.number
		b.RoomTypeSlug = r.slug

		clone := *b
		s.bookings[b.ID] = &clone
		s.byRoom[r.id] = append(s.byRoom[r.id], &clone)
		return nil
	}

	return domain.ErrNoRoomsAvailable
}

func (s *BookingStore) roomBusy(roomID string, stay domain.StayRange) bool {
	for _, existing := range s.byRoom[roomID] {
		if !activeStatus(existing.Status) {
			continue
		}
		if existing.Stay.Overlaps(stay) {
			return true
		}
	}
	return false
}

func activeStatus(st domain.BookingStatus) bool {
	for _, a := range domain.ActiveStatuses {
		if st == a {
			return true
		}
	}
	return false
}

func (s *BookingStore) GetByID(_ context.Context, id, userID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (s *BookingStore) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			clone := *b
			res = append(res, &clone)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *BookingStore) Cancel(_ context.Context, id string, c domain.Cancellation, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if err := b.Cancellable(); err != nil {
		return err
	}

	refund := c.RefundCents
	b.Status = domain.BookingStatusCancelled
	b.CancelledAt = &at
	b.RefundCents = &refund
	b.PenaltyApplied = c.PenaltyApplied
	b.UpdatedAt = at
	return nil
}

func (s *BookingStore) SetPaymentIntent(_ context.Context, id, intentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusPending {
		return domain.ErrInvalidTransition
	}

	b.PaymentIntentID = &intentID
	s.byIntent[intentID] = b
	return nil
}

func (s *BookingStore) ConfirmByIntent(_ context.Context, intentID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byIntent[intentID]
	if !ok || b.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotFound
	}

	b.Status = domain.BookingStatusConfirmed
	b.UpdatedAt = time.Now().UTC()
	clone := *b
	return &clone, nil
}

func (s *BookingStore) ExpireStale(_ context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.Status == domain.BookingStatusPending && b.CreatedAt.Before(cutoff) {
			b.Status = domain.BookingStatusExpired
			b.UpdatedAt = time.Now().UTC()
			clone := *b
			res = append(res, &clone)
		}
	}
	return res, nil
}
