// Package purchase implements the Purchase repository using PostgreSQL.
// An item has at most one purchase; writes are upserts keyed by item_id.
package purchase

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

// Repo provides purchase persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new purchase repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, item_id, purchase_price, additional_costs, source, source_id, purchase_date, created_at`

const getByItemSQL = `SELECT ` + columns + ` FROM purchases WHERE item_id = $1`

const getByItemIDsSQL = `SELECT ` + columns + ` FROM purchases WHERE item_id = ANY($1::uuid[])`

const upsertSQL = `
INSERT INTO purchases (item_id, purchase_price, additional_costs, source, source_id, purchase_date)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (item_id) DO UPDATE SET
    purchase_price   = EXCLUDED.purchase_price,
    additional_costs = EXCLUDED.additional_costs,
    source           = EXCLUDED.source,
    source_id        = EXCLUDED.source_id,
    purchase_date    = EXCLUDED.purchase_date
RETURNING ` + columns

// GetByItem returns the item's purchase or domain.ErrNotFound.
func (r *Repo) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Purchase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scan(querier.QueryRow(ctx, getByItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "purchase", itemID)
	}
	return &p, nil
}

// Upsert creates or replaces the item's purchase.
func (r *Repo) Upsert(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		p.ItemID,
		postgres.NullDecimal(p.PurchasePrice),
		postgres.NullDecimal(p.AdditionalCosts),
		postgres.NullText(p.Source),
		postgres.NullUUID(p.SourceID),
		postgres.NullDate(p.PurchaseDate),
	)
	saved, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "purchase", p.ItemID)
	}
	return &saved, nil
}

// GetByItemIDs returns purchases keyed by item id for a batch of items.
// Items without a purchase are absent from the map.
func (r *Repo) GetByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.Purchase, error) {
	result := make(map[uuid.UUID]domain.Purchase, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByItemIDsSQL, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("get purchases by item_ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("get purchases by item_ids: %w", err)
		}
		result[v.ItemID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get purchases by item_ids: %w", err)
	}
	return result, nil
}

func scan(row interface{ Scan(dest ...any) error }) (domain.Purchase, error) {
	var (
		p                 domain.Purchase
		price, additional decimal.NullDecimal
		source            pgtype.Text
		sourceID          pgtype.UUID
		date              pgtype.Date
	)
	if err := row.Scan(&p.ID, &p.ItemID, &price, &additional, &source, &sourceID, &date, &p.CreatedAt); err != nil {
		return domain.Purchase{}, err
	}
	p.PurchasePrice = postgres.DecimalPtr(price)
	p.AdditionalCosts = postgres.DecimalPtr(additional)
	p.Source = postgres.TextPtr(source)
	p.SourceID = postgres.UUIDPtr(sourceID)
	p.PurchaseDate = postgres.DatePtr(date)
	return p, nil
}
