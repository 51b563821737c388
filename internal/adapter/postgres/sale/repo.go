// Package sale implements the Sale repository using PostgreSQL.
package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Repo provides sale persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sale repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, item_id, sale_price, shipping_cost, platform_fees, other_fees, sale_date, created_at`

const getByItemSQL = `SELECT ` + columns + ` FROM sales WHERE item_id = $1`

const getByItemIDsSQL = `SELECT ` + columns + ` FROM sales WHERE item_id = ANY($1::uuid[])`

const upsertSQL = `
INSERT INTO sales (item_id, sale_price, shipping_cost, platform_fees, other_fees, sale_date)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (item_id) DO UPDATE SET
    sale_price    = EXCLUDED.sale_price,
    shipping_cost = EXCLUDED.shipping_cost,
    platform_fees = EXCLUDED.platform_fees,
    other_fees    = EXCLUDED.other_fees,
    sale_date     = EXCLUDED.sale_date
RETURNING ` + columns

// GetByItem returns the item's sale or domain.ErrNotFound.
func (r *Repo) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Sale, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scan(querier.QueryRow(ctx, getByItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "sale", itemID)
	}
	return &s, nil
}

// Upsert creates or replaces the item's sale.
func (r *Repo) Upsert(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		s.ItemID,
		postgres.NullDecimal(s.SalePrice),
		postgres.NullDecimal(s.ShippingCost),
		postgres.NullDecimal(s.PlatformFees),
		postgres.NullDecimal(s.OtherFees),
		postgres.NullDate(s.SaleDate),
	)
	saved, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "sale", s.ItemID)
	}
	return &saved, nil
}

// GetByItemIDs returns sales keyed by item id for a batch of items.
// Items without a sale are absent from the map.
func (r *Repo) GetByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.Sale, error) {
	result := make(map[uuid.UUID]domain.Sale, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByItemIDsSQL, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("get sales by item_ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("get sales by item_ids: %w", err)
		}
		result[v.ItemID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get sales by item_ids: %w", err)
	}
	return result, nil
}

func scan(row interface{ Scan(dest ...any) error }) (domain.Sale, error) {
	var (
		s                                domain.Sale
		price, shipping, platform, other decimal.NullDecimal
		date                             pgtype.Date
	)
	if err := row.Scan(&s.ID, &s.ItemID, &price, &shipping, &platform, &other, &date, &s.CreatedAt); err != nil {
		return domain.Sale{}, err
	}
	s.SalePrice = postgres.DecimalPtr(price)
	s.ShippingCost = postgres.DecimalPtr(shipping)
	s.PlatformFees = postgres.DecimalPtr(platform)
	s.OtherFees = postgres.DecimalPtr(other)
	s.SaleDate = postgres.DatePtr(date)
	return s, nil
}
