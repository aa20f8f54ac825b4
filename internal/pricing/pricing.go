// Package pricing computes stay totals by applying per-night pricing
// rules to a room type's base rate.
package pricing

import (
	"math"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// Quote returns the total price in cents for the stay. Every night
// starts at the room type's base price; each rule that matches the
// night multiplies the rate, and matching rules compound. The total is
// rounded half-up to whole cents once, after summing all nights.
//
// Quote is pure: the same inputs always produce the same total.
func Quote(roomType *domain.RoomType, rules []domain.PricingRule, stay domain.StayRange) (int64, error) {
	if !stay.CheckIn.Before(stay.CheckOut) {
		return 0, domain.ErrInvalidStayRange
	}

	var total float64
	stay.EachNight(func(day time.Time) {
		multiplier := 1.0
		for _, rule := range rules {
			if rule.AppliesTo(roomType.ID) && rule.Matches(day) {
				multiplier *= rule.Multiplier
			}
		}
		total += float64(roomType.BasePriceCents) * multiplier
	})

	return int64(math.Floor(total + 0.5)), nil
}
