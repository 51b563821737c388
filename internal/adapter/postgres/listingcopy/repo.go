// Package listingcopy implements the saved listing copy repository using
// PostgreSQL. Writes are upserts keyed by item_id.
package listingcopy

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Repo provides saved copy persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new listing copy repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, item_id, ebay_title, ebay_description, facebook_title, facebook_description,
    etsy_title, etsy_description, created_at, updated_at`

const getByItemSQL = `SELECT ` + columns + ` FROM listing_copy WHERE item_id = $1`

const upsertSQL = `
INSERT INTO listing_copy (item_id, ebay_title, ebay_description, facebook_title, facebook_description,
    etsy_title, etsy_description)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (item_id) DO UPDATE SET
    ebay_title           = EXCLUDED.ebay_title,
    ebay_description     = EXCLUDED.ebay_description,
    facebook_title       = EXCLUDED.facebook_title,
    facebook_description = EXCLUDED.facebook_description,
    etsy_title           = EXCLUDED.etsy_title,
    etsy_description     = EXCLUDED.etsy_description,
    updated_at           = now()
RETURNING ` + columns

// GetByItem returns the item's saved copy or domain.ErrNotFound.
func (r *Repo) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.SavedCopy, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scan(querier.QueryRow(ctx, getByItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "listing copy", itemID)
	}
	return &c, nil
}

// Upsert creates or replaces the item's saved copy.
func (r *Repo) Upsert(ctx context.Context, c *domain.SavedCopy) (*domain.SavedCopy, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		c.ItemID,
		postgres.NullText(c.EbayTitle),
		postgres.NullText(c.EbayDescription),
		postgres.NullText(c.FacebookTitle),
		postgres.NullText(c.FacebookDescription),
		postgres.NullText(c.EtsyTitle),
		postgres.NullText(c.EtsyDescription),
	)
	saved, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "listing copy", c.ItemID)
	}
	return &saved, nil
}

func scan(row interface{ Scan(dest ...any) error }) (domain.SavedCopy, error) {
	var (
		c                           domain.SavedCopy
		ebayTitle, ebayDesc         pgtype.Text
		facebookTitle, facebookDesc pgtype.Text
		etsyTitle, etsyDesc         pgtype.Text
	)
	if err := row.Scan(&c.ID, &c.ItemID, &ebayTitle, &ebayDesc, &facebookTitle, &facebookDesc,
		&etsyTitle, &etsyDesc, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.SavedCopy{}, err
	}
	c.EbayTitle = postgres.TextPtr(ebayTitle)
	c.EbayDescription = postgres.TextPtr(ebayDesc)
	c.FacebookTitle = postgres.TextPtr(facebookTitle)
	c.FacebookDescription = postgres.TextPtr(facebookDesc)
	c.EtsyTitle = postgres.TextPtr(etsyTitle)
	c.EtsyDescription = postgres.TextPtr(etsyDesc)
	return c, nil
}
