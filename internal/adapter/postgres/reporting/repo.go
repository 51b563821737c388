// Package reporting implements the read-only reporting query using PostgreSQL.
// It joins each item with its purchase, current listing and sale so the
// service can derive financials row by row.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Repo runs reporting queries.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reporting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// $2 and $3 bound created_at as [start, end); NULL leaves a side open.
const entriesSQL = `
SELECT
    i.id, i.title, i.status, i.created_at,
    COALESCE(c.name, i.category) AS category_name,
    lp.name AS platform_name,
    p.id, p.purchase_price, p.additional_costs,
    l.id, l.status, l.listing_price, l.date_listed,
    s.id, s.sale_price, s.shipping_cost, s.platform_fees, s.other_fees, s.sale_date
FROM items i
LEFT JOIN categories c ON c.id = i.category_id
LEFT JOIN purchases p ON p.item_id = i.id
LEFT JOIN LATERAL (
    SELECT id, platform_id, status, listing_price, date_listed
    FROM listings
    WHERE item_id = i.id
    ORDER BY created_at DESC, id DESC
    LIMIT 1
) l ON true
LEFT JOIN listing_platforms lp ON lp.id = l.platform_id
LEFT JOIN sales s ON s.item_id = i.id
WHERE i.owner_id = $1
  AND NOT i.is_deleted
  AND ($2::timestamptz IS NULL OR i.created_at >= $2)
  AND ($3::timestamptz IS NULL OR i.created_at < $3)
ORDER BY i.created_at DESC, i.id`

// Entries returns the owner's non-deleted items created within rng, newest first.
func (r *Repo) Entries(ctx context.Context, ownerID uuid.UUID, rng domain.DateRange) ([]domain.ReportEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	start, end := rng.Bounds()
	rows, err := querier.Query(ctx, entriesSQL, ownerID, bound(start), bound(end))
	if err != nil {
		return nil, fmt.Errorf("query report entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.ReportEntry{}
	for rows.Next() {
		var (
			e                                    domain.ReportEntry
			status                               string
			categoryName, platformName           pgtype.Text
			purchaseID, listingID, saleID        pgtype.UUID
			purchasePrice, additional            decimal.NullDecimal
			listingStatus                        pgtype.Text
			listingPrice                         decimal.NullDecimal
			dateListed, saleDate                 pgtype.Date
			salePrice, shipping, platform, other decimal.NullDecimal
		)
		err := rows.Scan(
			&e.ItemID, &e.Title, &status, &e.CreatedAt,
			&categoryName, &platformName,
			&purchaseID, &purchasePrice, &additional,
			&listingID, &listingStatus, &listingPrice, &dateListed,
			&saleID, &salePrice, &shipping, &platform, &other, &saleDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report entry: %w", err)
		}

		e.Status = domain.ItemStatus(status)
		e.CategoryName = postgres.TextPtr(categoryName)
		e.PlatformName = postgres.TextPtr(platformName)
		if purchaseID.Valid {
			e.Purchase = &domain.Purchase{
				ID:              uuid.UUID(purchaseID.Bytes),
				ItemID:          e.ItemID,
				PurchasePrice:   postgres.DecimalPtr(purchasePrice),
				AdditionalCosts: postgres.DecimalPtr(additional),
			}
		}
		if listingID.Valid {
			e.Listing = &domain.Listing{
				ID:           uuid.UUID(listingID.Bytes),
				ItemID:       e.ItemID,
				Status:       domain.ListingStatus(listingStatus.String),
				ListingPrice: postgres.DecimalPtr(listingPrice),
				DateListed:   postgres.DatePtr(dateListed),
			}
		}
		if saleID.Valid {
			e.Sale = &domain.Sale{
				ID:           uuid.UUID(saleID.Bytes),
				ItemID:       e.ItemID,
				SalePrice:    postgres.DecimalPtr(salePrice),
				ShippingCost: postgres.DecimalPtr(shipping),
				PlatformFees: postgres.DecimalPtr(platform),
				OtherFees:    postgres.DecimalPtr(other),
				SaleDate:     postgres.DatePtr(saleDate),
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query report entries: %w", err)
	}
	return entries, nil
}

func bound(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
