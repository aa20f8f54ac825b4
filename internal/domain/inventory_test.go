package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomKind(t *testing.T) {
	for _, k := range RoomKinds {
		got, err := ParseRoomKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseRoomKind("PENTHOUSE")
	require.ErrorIs(t, err, ErrValidation)

	// lowercase is not accepted
	_, err = ParseRoomKind("double")
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseViewType(t *testing.T) {
	for _, v := range ViewTypes {
		got, err := ParseViewType(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseViewType("OCEAN")
	require.ErrorIs(t, err, ErrValidation)
}

func TestPricingRule_Matches_DateWindow(t *testing.T) {
	start := day(2026, 6, 1)
	end := day(2026, 8, 31)
	rule := PricingRule{StartDate: &start, EndDate: &end, Multiplier: 1.4}

	assert.True(t, rule.Matches(day(2026, 6, 1)), "window start is inclusive")
	assert.True(t, rule.Matches(day(2026, 8, 31)), "window end is inclusive")
	assert.True(t, rule.Matches(day(2026, 7, 15)))
	assert.False(t, rule.Matches(day(2026, 5, 31)))
	assert.False(t, rule.Matches(day(2026, 9, 1)))
}

func TestPricingRule_Matches_DaysOfWeek(t *testing.T) {
	// 4 = Friday, 5 = Saturday in the Monday-based week
	rule := PricingRule{DaysOfWeek: []int{4, 5}, Multiplier: 1.25}

	assert.False(t, rule.Matches(day(2026, 3, 2)), "Monday")
	assert.False(t, rule.Matches(day(2026, 3, 5)), "Thursday")
	assert.True(t, rule.Matches(day(2026, 3, 6)), "Friday")
	assert.True(t, rule.Matches(day(2026, 3, 7)), "Saturday")
	assert.False(t, rule.Matches(day(2026, 3, 8)), "Sunday")
}

func TestPricingRule_Matches_Unconstrained(t *testing.T) {
	rule := PricingRule{Multiplier: 1.1}

	assert.True(t, rule.Matches(day(2026, 1, 1)))
	assert.True(t, rule.Matches(day(2030, 12, 31)))
}

func TestPricingRule_Matches_CombinedConstraints(t *testing.T) {
	start := day(2026, 3, 1)
	end := day(2026, 3, 31)
	rule := PricingRule{StartDate: &start, EndDate: &end, DaysOfWeek: []int{4, 5}}

	assert.True(t, rule.Matches(day(2026, 3, 6)), "Friday inside the window")
	assert.False(t, rule.Matches(day(2026, 3, 4)), "Wednesday inside the window")
	assert.False(t, rule.Matches(day(2026, 4, 3)), "Friday outside the window")
}

func TestPricingRule_AppliesTo(t *testing.T) {
	global := PricingRule{Multiplier: 1.2}
	assert.True(t, global.AppliesTo("rt1"))
	assert.True(t, global.AppliesTo("rt2"))

	scoped := "rt1"
	rule := PricingRule{RoomTypeID: &scoped, Multiplier: 0.9}
	assert.True(t, rule.AppliesTo("rt1"))
	assert.False(t, rule.AppliesTo("rt2"))
}
