package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const roomTypeColumns = `rt.id, rt.property_id, rt.kind, rt.slug, rt.base_price_cents,
	       rt.capacity, rt.view_type, rt.smoking, rt.amenities, p.name, p.city, rt.created_at`

func scanRoomType(row rowScanner) (*domain.RoomType, error) {
	var rt domain.RoomType
	var amenities pq.StringArray
	if err := row.Scan(
		&rt.ID, &rt.PropertyID, &rt.Kind, &rt.Slug, &rt.BasePriceCents,
		&rt.Capacity, &rt.View, &rt.Smoking, &amenities, &rt.HotelName, &rt.City,
		&rt.CreatedAt,
	); err != nil {
		return nil, err
	}
	rt.Amenities = amenities
	return &rt, nil
}

func (r *InventoryRepository) GetRoomTypeBySlug(ctx context.Context, slug string) (*domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + `
			  FROM room_types rt
			  JOIN properties p ON p.id = rt.property_id
			  WHERE rt.slug = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slug)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}

	rt, err := scanRoomType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("scan room type: %w", err)
	}
	return rt, nil
}

// FindAvailableRoomTypes returns room types with at least one room free
// for the whole stay. Snapshot read without locks: a reported room can
// still be claimed by a concurrent allocation before the caller books.
func (r *InventoryRepository) FindAvailableRoomTypes(ctx context.Context, stay domain.StayRange, filter domain.SearchFilter) ([]*domain.RoomType, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + roomTypeColumns + `
		FROM room_types rt
		JOIN properties p ON p.id = rt.property_id
		WHERE EXISTS (
			SELECT 1 FROM rooms r
			WHERE r.room_type_id = rt.id
			  AND NOT EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.room_id = r.id
				  AND b.status = ANY($1)
				  AND b.stay_range && daterange($2::date, $3::date, '[)')
			  )
		)`)

	args := []any{pq.Array(domain.ActiveStatuses), stay.CheckIn, stay.CheckOut}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.City != "" {
		sb.WriteString(" AND lower(p.city) = lower(" + arg(filter.City) + ")")
	}
	if filter.Kind != "" {
		sb.WriteString(" AND rt.kind = " + arg(filter.Kind))
	}
	if filter.View != "" {
		sb.WriteString(" AND rt.view_type = " + arg(filter.View))
	}
	if filter.MinCapacity > 0 {
		sb.WriteString(" AND rt.capacity >= " + arg(filter.MinCapacity))
	}
	if filter.MinPriceCents > 0 {
		sb.WriteString(" AND rt.base_price_cents >= " + arg(filter.MinPriceCents))
	}
	if filter.MaxPriceCents > 0 {
		sb.WriteString(" AND rt.base_price_cents <= " + arg(filter.MaxPriceCents))
	}
	if filter.Smoking != nil {
		sb.WriteString(" AND rt.smoking = " + arg(*filter.Smoking))
	}
	if filter.Amenity != "" {
		sb.WriteString(" AND " + arg(filter.Amenity) + " = ANY(rt.amenities)")
	}
	sb.WriteString(" ORDER BY rt.slug")

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("find available room types: %w", err)
	}
	defer rows.Close()

	var res []*domain.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room type: %w", err)
		}
		res = append(res, rt)
	}

	return res, rows.Err()
}

// CountRoomsLeft maps room type id to rooms without an overlapping
// active booking. Types with no rooms at all are absent from the result.
func (r *InventoryRepository) CountRoomsLeft(ctx context.Context, roomTypeIDs []string, stay domain.StayRange) (map[string]int, error) {
	query := `SELECT r.room_type_id,
			         COUNT(DISTINCT r.id) AS total,
			         COUNT(DISTINCT b.room_id) AS busy
			  FROM rooms r
			  LEFT JOIN bookings b
			    ON b.room_id = r.id
			    AND b.status = ANY($2)
			    AND b.stay_range && daterange($3::date, $4::date, '[)')
			  WHERE r.room_type_id = ANY($1)
			  GROUP BY r.room_type_id`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array(roomTypeIDs), pq.Array(domain.ActiveStatuses),
		stay.CheckIn, stay.CheckOut,
	)
	if err != nil {
		return nil, fmt.Errorf("count rooms left: %w", err)
	}
	defer rows.Close()

	res := make(map[string]int, len(roomTypeIDs))
	for rows.Next() {
		var id string
		var total, busy int
		if err := rows.Scan(&id, &total, &busy); err != nil {
			return nil, fmt.Errorf("scan rooms left: %w", err)
		}
		left := total - busy
		if left < 0 {
			left = 0
		}
		res[id] = left
	}

	return res, rows.Err()
}

func (r *InventoryRepository) ListPricingRules(ctx context.Context, roomTypeID string) ([]domain.PricingRule, error) {
	query := `SELECT id, name, room_type_id, start_date, end_date, days_of_week, multiplier
			  FROM pricing_rules
			  WHERE room_type_id = $1 OR room_type_id IS NULL`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}
	defer rows.Close()

	var res []domain.PricingRule
	for rows.Next() {
		var rule domain.PricingRule
		var days pq.Int64Array
		if err := rows.Scan(
			&rule.ID, &rule.Name, &rule.RoomTypeID,
			&rule.StartDate, &rule.EndDate, &days, &rule.Multiplier,
		); err != nil {
			return nil, fmt.Errorf("scan pricing rule: %w", err)
		}
		for _, d := range days {
			rule.DaysOfWeek = append(rule.DaysOfWeek, int(d))
		}
		res = append(res, rule)
	}

	return res, rows.Err()
}
