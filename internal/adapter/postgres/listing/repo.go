// Package listing implements the Listing repository using PostgreSQL.
// The schema allows several listings per item; the application maintains
// one, so Upsert rewrites the most recent row when present.
package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new listing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, item_id, platform_id, status, listing_url, listing_price, shipping_price, fees_estimate, date_listed, created_at`

const getCurrentSQL = `
SELECT ` + columns + `
FROM listings
WHERE item_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

const getCurrentByItemIDsSQL = `
SELECT DISTINCT ON (item_id) ` + columns + `
FROM listings
WHERE item_id = ANY($1::uuid[])
ORDER BY item_id, created_at DESC, id DESC`

const getByIDSQL = `SELECT ` + columns + ` FROM listings WHERE id = $1`

const lockCurrentSQL = `
SELECT id FROM listings
WHERE item_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
FOR UPDATE`

// GetByItem returns the item's current listing or domain.ErrNotFound.
func (r *Repo) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Listing, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scan(querier.QueryRow(ctx, getCurrentSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "listing", itemID)
	}
	return &l, nil
}

// GetByID returns a listing by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scan(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "listing", id)
	}
	return &l, nil
}

// Upsert rewrites the item's current listing, inserting one when none exists.
// Run inside a transaction so the row lock holds until commit.
func (r *Repo) Upsert(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	values := map[string]any{
		"platform_id":    postgres.NullUUID(l.PlatformID),
		"status":         string(l.Status),
		"listing_url":    postgres.NullText(l.ListingURL),
		"listing_price":  postgres.NullDecimal(l.ListingPrice),
		"shipping_price": postgres.NullDecimal(l.ShippingPrice),
		"fees_estimate":  postgres.NullDecimal(l.FeesEstimate),
		"date_listed":    postgres.NullDate(l.DateListed),
	}

	var existing uuid.UUID
	err := querier.QueryRow(ctx, lockCurrentSQL, l.ItemID).Scan(&existing)

	var b postgres.Sqlizer
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		values["item_id"] = l.ItemID
		b = postgres.Builder().Insert("listings").SetMap(values).Suffix("RETURNING " + columns)
	case err != nil:
		return nil, fmt.Errorf("lock listing: %w", err)
	default:
		b = postgres.Builder().Update("listings").
			SetMap(values).
			Where(squirrel.Eq{"id": existing}).
			Suffix("RETURNING " + columns)
	}

	row, err := postgres.QueryRowBuilt(ctx, querier, b)
	if err != nil {
		return nil, fmt.Errorf("upsert listing: %w", err)
	}
	saved, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "listing", l.ItemID)
	}
	return &saved, nil
}

// GetByItemIDs returns listings keyed by item id for a batch of items.
// Items without a listing are absent from the map.
func (r *Repo) GetByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.Listing, error) {
	result := make(map[uuid.UUID]domain.Listing, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getCurrentByItemIDsSQL, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("get listings by item_ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("get listings by item_ids: %w", err)
		}
		result[v.ItemID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get listings by item_ids: %w", err)
	}
	return result, nil
}

func scan(row interface{ Scan(dest ...any) error }) (domain.Listing, error) {
	var (
		l                             domain.Listing
		platformID                    pgtype.UUID
		status                        string
		url                           pgtype.Text
		price, shipping, feesEstimate decimal.NullDecimal
		dateListed                    pgtype.Date
	)
	if err := row.Scan(&l.ID, &l.ItemID, &platformID, &status, &url, &price, &shipping, &feesEstimate, &dateListed, &l.CreatedAt); err != nil {
		return domain.Listing{}, err
	}
	l.PlatformID = postgres.UUIDPtr(platformID)
	l.Status = domain.ListingStatus(status)
	l.ListingURL = postgres.TextPtr(url)
	l.ListingPrice = postgres.DecimalPtr(price)
	l.ShippingPrice = postgres.DecimalPtr(shipping)
	l.FeesEstimate = postgres.DecimalPtr(feesEstimate)
	l.DateListed = postgres.DatePtr(dateListed)
	return l, nil
}
