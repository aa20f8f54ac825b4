package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type InventoryRepo interface {
	GetRoomTypeBySlug(ctx context.Context, slug string) (*domain.RoomType, error)

	// FindAvailableRoomTypes returns room types with at least one room
	// free for the whole stay, narrowed by the filter. Unlocked snapshot
	// read: availability is not reserved by searching.
	FindAvailableRoomTypes(ctx context.Context, stay domain.StayRange, filter domain.SearchFilter) ([]*domain.RoomType, error)

	// CountRoomsLeft maps room type id to the number of rooms without an
	// active overlapping booking, floored at zero.
	CountRoomsLeft(ctx context.Context, roomTypeIDs []string, stay domain.StayRange) (map[string]int, error)

	// ListPricingRules returns the rules scoped to the room type plus the
	// global ones.
	ListPricingRules(ctx context.Context, roomTypeID string) ([]domain.PricingRule, error)
}
