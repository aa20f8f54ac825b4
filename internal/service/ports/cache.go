package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// SearchCache is a best-effort cache for search responses. Misses and
// backend failures both surface as (nil, false): callers fall through
// to the database.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]domain.SearchResult, bool)
	Set(ctx context.Context, key string, results []domain.SearchResult)
}
