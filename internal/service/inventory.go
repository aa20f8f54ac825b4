package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/pricing"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type InventoryService struct {
	repo   ports.InventoryRepo
	cache  ports.SearchCache // nil disables caching
	logger logger.Logger
}

func NewInventoryService(repo ports.InventoryRepo, cache ports.SearchCache, logger logger.Logger) *InventoryService {
	return &InventoryService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Search returns every room type with at least one free room for the
// stay, its remaining count and the total price for the range, most
// available first. The result is an unlocked snapshot: a listed room
// may be gone by the time the caller books.
func (s *InventoryService) Search(ctx context.Context, checkIn, checkOut time.Time, filter domain.SearchFilter) ([]domain.SearchResult, error) {
	stay, err := domain.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	key := searchKey(stay, filter)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	roomTypes, err := s.repo.FindAvailableRoomTypes(ctx, stay, filter)
	if err != nil {
		return nil, fmt.Errorf("find available room types: %w", err)
	}
	if len(roomTypes) == 0 {
		return []domain.SearchResult{}, nil
	}

	ids := make([]string, len(roomTypes))
	for i, rt := range roomTypes {
		ids[i] = rt.ID
	}

	roomsLeft, err := s.repo.CountRoomsLeft(ctx, ids, stay)
	if err != nil {
		return nil, fmt.Errorf("count rooms left: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(roomTypes))
	for _, rt := range roomTypes {
		rules, err := s.repo.ListPricingRules(ctx, rt.ID)
		if err != nil {
			return nil, fmt.Errorf("list pricing rules: %w", err)
		}

		total, err := pricing.Quote(rt, rules, stay)
		if err != nil {
			return nil, fmt.Errorf("quote stay: %w", err)
		}

		results = append(results, domain.SearchResult{
			RoomType:   *rt,
			RoomsLeft:  roomsLeft[rt.ID],
			TotalCents: total,
		})
	}

	// Most available first, slug as the stable tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RoomsLeft != results[j].RoomsLeft {
			return results[i].RoomsLeft > results[j].RoomsLeft
		}
		return results[i].RoomType.Slug < results[j].RoomType.Slug
	})

	if s.cache != nil {
		s.cache.Set(ctx, key, results)
	}

	return results, nil
}

func searchKey(stay domain.StayRange, f domain.SearchFilter) string {
	smoking := ""
	if f.Smoking != nil {
		smoking = strconv.FormatBool(*f.Smoking)
	}
	return strings.Join([]string{
		"search",
		stay.CheckIn.Format("2006-01-02"),
		stay.CheckOut.Format("2006-01-02"),
		f.City,
		string(f.Kind),
		string(f.View),
		strconv.Itoa(f.MinCapacity),
		strconv.FormatInt(f.MinPriceCents, 10),
		strconv.FormatInt(f.MaxPriceCents, 10),
		smoking,
		f.Amenity,
	}, ":")
}
