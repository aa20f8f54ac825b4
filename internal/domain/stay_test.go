package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStayRange_TruncatesToDates(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC)

	stay, err := NewStayRange(checkIn, checkOut)

	require.NoError(t, err)
	assert.Equal(t, day(2026, 3, 2), stay.CheckIn)
	assert.Equal(t, day(2026, 3, 4), stay.CheckOut)
	assert.Equal(t, 2, stay.Nights())
}

func TestNewStayRange_RejectsEmptyAndInverted(t *testing.T) {
	_, err := NewStayRange(day(2026, 3, 2), day(2026, 3, 2))
	require.ErrorIs(t, err, ErrInvalidStayRange)

	_, err = NewStayRange(day(2026, 3, 4), day(2026, 3, 2))
	require.ErrorIs(t, err, ErrInvalidStayRange)

	// same calendar day after truncation is still empty
	_, err = NewStayRange(
		time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC),
	)
	require.ErrorIs(t, err, ErrInvalidStayRange)
}

func TestStayRange_Overlaps(t *testing.T) {
	base, err := NewStayRange(day(2026, 3, 10), day(2026, 3, 15))
	require.NoError(t, err)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical", day(2026, 3, 10), day(2026, 3, 15), true},
		{"contained", day(2026, 3, 11), day(2026, 3, 13), true},
		{"overlaps start", day(2026, 3, 8), day(2026, 3, 11), true},
		{"overlaps end", day(2026, 3, 14), day(2026, 3, 18), true},
		{"back to back before", day(2026, 3, 5), day(2026, 3, 10), false},
		{"back to back after", day(2026, 3, 15), day(2026, 3, 20), false},
		{"disjoint", day(2026, 3, 20), day(2026, 3, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, err := NewStayRange(tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, base.Overlaps(other))
			assert.Equal(t, tt.want, other.Overlaps(base))
		})
	}
}

func TestStayRange_EachNight(t *testing.T) {
	stay, err := NewStayRange(day(2026, 3, 2), day(2026, 3, 5))
	require.NoError(t, err)

	var nights []time.Time
	stay.EachNight(func(d time.Time) { nights = append(nights, d) })

	// checkout day is not an occupied night
	assert.Equal(t, []time.Time{
		day(2026, 3, 2), day(2026, 3, 3), day(2026, 3, 4),
	}, nights)
}
