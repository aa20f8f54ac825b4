package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_Search_Success(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, nil, newTestLogger(t))

	double := &domain.RoomType{ID: "rt1", Slug: "plaza-double-city", BasePriceCents: 10000}
	deluxe := &domain.RoomType{ID: "rt2", Slug: "plaza-deluxe-city", BasePriceCents: 20000}

	repo.EXPECT().FindAvailableRoomTypes(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.RoomType{double, deluxe}, nil)
	repo.EXPECT().CountRoomsLeft(mock.Anything, []string{"rt1", "rt2"}, mock.Anything).
		Return(map[string]int{"rt1": 1, "rt2": 3}, nil)
	repo.EXPECT().ListPricingRules(mock.Anything, "rt1").Return(nil, nil)
	repo.EXPECT().ListPricingRules(mock.Anything, "rt2").Return(nil, nil)

	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	results, err := svc.Search(context.Background(), checkIn, checkOut, domain.SearchFilter{})

	require.NoError(t, err)
	require.Len(t, results, 2)

	// most available first
	assert.Equal(t, "plaza-deluxe-city", results[0].RoomType.Slug)
	assert.Equal(t, 3, results[0].RoomsLeft)
	assert.Equal(t, int64(40000), results[0].TotalCents)

	assert.Equal(t, "plaza-double-city", results[1].RoomType.Slug)
	assert.Equal(t, 1, results[1].RoomsLeft)
	assert.Equal(t, int64(20000), results[1].TotalCents)
}

func TestInventoryService_Search_InvalidStayRange(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, nil, newTestLogger(t))

	checkIn := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	_, err := svc.Search(context.Background(), checkIn, checkIn, domain.SearchFilter{})

	require.ErrorIs(t, err, domain.ErrInvalidStayRange)
}

func TestInventoryService_Search_NoAvailability(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, nil, newTestLogger(t))

	repo.EXPECT().FindAvailableRoomTypes(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	results, err := svc.Search(context.Background(), checkIn, checkOut, domain.SearchFilter{})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestInventoryService_Search_CacheHit(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	cache := mocks.NewMockSearchCache(t)
	svc := NewInventoryService(repo, cache, newTestLogger(t))

	cached := []domain.SearchResult{
		{RoomType: domain.RoomType{ID: "rt1", Slug: "plaza-double-city"}, RoomsLeft: 2, TotalCents: 20000},
	}
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(cached, true)

	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	results, err := svc.Search(context.Background(), checkIn, checkOut, domain.SearchFilter{})

	require.NoError(t, err)
	assert.Equal(t, cached, results)
}

func TestInventoryService_Search_CacheMissFillsCache(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	cache := mocks.NewMockSearchCache(t)
	svc := NewInventoryService(repo, cache, newTestLogger(t))

	double := &domain.RoomType{ID: "rt1", Slug: "plaza-double-city", BasePriceCents: 10000}

	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false)
	repo.EXPECT().FindAvailableRoomTypes(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.RoomType{double}, nil)
	repo.EXPECT().CountRoomsLeft(mock.Anything, []string{"rt1"}, mock.Anything).
		Return(map[string]int{"rt1": 2}, nil)
	repo.EXPECT().ListPricingRules(mock.Anything, "rt1").Return(nil, nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return()

	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	results, err := svc.Search(context.Background(), checkIn, checkOut, domain.SearchFilter{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].RoomsLeft)
}

func TestInventoryService_Search_AppliesPricingRules(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	svc := NewInventoryService(repo, nil, newTestLogger(t))

	double := &domain.RoomType{ID: "rt1", Slug: "plaza-double-city", BasePriceCents: 10000}
	rules := []domain.PricingRule{
		{ID: "pr1", Name: "weekend uplift", DaysOfWeek: []int{4, 5}, Multiplier: 1.25},
	}

	repo.EXPECT().FindAvailableRoomTypes(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.RoomType{double}, nil)
	repo.EXPECT().CountRoomsLeft(mock.Anything, []string{"rt1"}, mock.Anything).
		Return(map[string]int{"rt1": 1}, nil)
	repo.EXPECT().ListPricingRules(mock.Anything, "rt1").Return(rules, nil)

	// Fri 2026-03-06 and Sat 2026-03-07 both carry the uplift
	checkIn := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	results, err := svc.Search(context.Background(), checkIn, checkOut, domain.SearchFilter{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(25000), results[0].TotalCents)
}
