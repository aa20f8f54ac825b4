package domain

import (
	"fmt"
	"time"
)

type RoomKind string

const (
	RoomKindSingle       RoomKind = "SINGLE"
	RoomKindDouble       RoomKind = "DOUBLE"
	RoomKindTwin         RoomKind = "TWIN"
	RoomKindStudio       RoomKind = "STUDIO"
	RoomKindDeluxe       RoomKind = "DELUXE"
	RoomKindFamily       RoomKind = "FAMILY"
	RoomKindPresidential RoomKind = "PRESIDENTIAL"
)

var RoomKinds = []RoomKind{
	RoomKindSingle, RoomKindDouble, RoomKindTwin, RoomKindStudio,
	RoomKindDeluxe, RoomKindFamily, RoomKindPresidential,
}

func ParseRoomKind(s string) (RoomKind, error) {
	for _, k := range RoomKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown room kind %q", ErrValidation, s)
}

type ViewType string

const (
	ViewCity     ViewType = "CITY"
	ViewSea      ViewType = "SEA"
	ViewGarden   ViewType = "GARDEN"
	ViewPool     ViewType = "POOL"
	ViewMountain ViewType = "MOUNTAIN"
	ViewNone     ViewType = "NONE"
)

var ViewTypes = []ViewType{ViewCity, ViewSea, ViewGarden, ViewPool, ViewMountain, ViewNone}

func ParseViewType(s string) (ViewType, error) {
	for _, v := range ViewTypes {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown view type %q", ErrValidation, s)
}

// RoomType is a sellable room configuration owned by a property.
// Physical rooms of the type are interchangeable for allocation.
type RoomType struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"property_id"`
	Kind           RoomKind  `json:"kind"`
	Slug           string    `json:"slug"`
	BasePriceCents int64     `json:"base_price_cents"`
	Capacity       int       `json:"capacity"`
	View           ViewType  `json:"view_type"`
	Smoking        bool      `json:"smoking"`
	Amenities      []string  `json:"amenities"`
	HotelName      string    `json:"hotel_name"`
	City           string    `json:"city"`
	CreatedAt      time.Time `json:"created_at"`
}

// Room is the unit of allocation: one physical, bookable room.
type Room struct {
	ID         string `json:"id"`
	RoomTypeID string `json:"room_type_id"`
	Number     string `json:"number"`
}

// PricingRule multiplies the nightly rate for the nights it matches.
// A nil RoomTypeID applies the rule to every room type; a nil date window
// or empty weekday set leaves that dimension unconstrained.
type PricingRule struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	RoomTypeID *string    `json:"room_type_id"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	DaysOfWeek []int      `json:"days_of_week"` // 0=Monday .. 6=Sunday
	Multiplier float64    `json:"price_multiplier"`
}

// Matches reports whether the rule applies to the given night.
func (r PricingRule) Matches(day time.Time) bool {
	if r.StartDate != nil && r.EndDate != nil {
		if day.Before(*r.StartDate) || day.After(*r.EndDate) {
			return false
		}
	}
	if len(r.DaysOfWeek) > 0 {
		// time.Weekday counts from Sunday; pricing rules from Monday.
		idx := (int(day.Weekday()) + 6) % 7
		found := false
		for _, d := range r.DaysOfWeek {
			if d == idx {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// AppliesTo reports whether the rule is scoped to the given room type.
func (r PricingRule) AppliesTo(roomTypeID string) bool {
	return r.RoomTypeID == nil || *r.RoomTypeID == roomTypeID
}

// SearchFilter narrows a room-type search. Zero values mean "no filter".
type SearchFilter struct {
	City           string
	Kind           RoomKind
	View           ViewType
	MinCapacity    int
	MinPriceCents  int64
	MaxPriceCents  int64
	Smoking        *bool
	Amenity        string
}

// SearchResult is one row of the availability search: a room type with
// its remaining inventory and the total price for the requested stay.
type SearchResult struct {
	RoomType   RoomType `json:"room_type"`
	RoomsLeft  int      `json:"rooms_left"`
	TotalCents int64    `json:"total_price_cents"`
}
