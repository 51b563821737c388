package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Money parses a decimal literal for seeding; it panics on bad input.
func Money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SeedItem creates a new, idle item owned by ownerID.
func SeedItem(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Item {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "Test Item " + uniqueSuffix(),
		Status:    domain.ItemStatusNew,
		AIStatus:  domain.AIStatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, owner_id, title, status, ai_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.OwnerID, item.Title, string(item.Status), string(item.AIStatus), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return item
}

// SeedImage attaches an image row to an item.
func SeedImage(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID) domain.ItemImage {
	t.Helper()

	img := domain.ItemImage{
		ID:        uuid.New(),
		ItemID:    itemID,
		URL:       "https://cdn.example.com/" + itemID.String() + "/" + uniqueSuffix() + ".jpg",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO item_images (id, item_id, url, created_at) VALUES ($1, $2, $3, $4)`,
		img.ID, img.ItemID, img.URL, img.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedImage: %v", err)
	}
	return img
}

// SeedRef creates a reference record of the given kind with a unique name.
func SeedRef(t *testing.T, pool *pgxpool.Pool, kind domain.RefKind) domain.RefRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.RefRecord{Kind: kind, ID: uuid.New(), Name: string(kind) + "-" + uniqueSuffix()}

	var err error
	switch kind {
	case domain.RefCategory:
		_, err = pool.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)`, rec.ID, rec.Name)
	case domain.RefLocation:
		_, err = pool.Exec(ctx, `INSERT INTO inventory_locations (id, name) VALUES ($1, $2)`, rec.ID, rec.Name)
	case domain.RefSource:
		rec.SourceType = domain.SourceOther
		_, err = pool.Exec(ctx, `INSERT INTO acquisition_sources (id, name) VALUES ($1, $2)`, rec.ID, rec.Name)
	case domain.RefPlatform:
		rec.Slug = domain.Slugify(rec.Name)
		_, err = pool.Exec(ctx, `INSERT INTO listing_platforms (id, name, slug) VALUES ($1, $2, $3)`, rec.ID, rec.Name, rec.Slug)
	case domain.RefTag:
		_, err = pool.Exec(ctx, `INSERT INTO tags (id, name) VALUES ($1, $2)`, rec.ID, rec.Name)
	default:
		t.Fatalf("testhelper: SeedRef: unknown kind %q", kind)
	}
	if err != nil {
		t.Fatalf("testhelper: SeedRef %s: %v", kind, err)
	}
	return rec
}

// SeedPurchase inserts a purchase for an item.
func SeedPurchase(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, price, additional *decimal.Decimal, sourceID *uuid.UUID) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO purchases (item_id, purchase_price, additional_costs, source_id) VALUES ($1, $2, $3, $4)`,
		itemID, nullDecimal(price), nullDecimal(additional), sourceID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPurchase: %v", err)
	}
}

// SeedListing inserts a listing for an item and returns its ID.
func SeedListing(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, status domain.ListingStatus, price *decimal.Decimal, platformID *uuid.UUID) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO listings (item_id, status, listing_price, platform_id, date_listed)
		 VALUES ($1, $2, $3, $4, CURRENT_DATE) RETURNING id`,
		itemID, string(status), nullDecimal(price), platformID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedListing: %v", err)
	}
	return id
}

// SeedSale inserts a sale for an item.
func SeedSale(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, price, shipping, platformFees, otherFees *decimal.Decimal) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO sales (item_id, sale_price, shipping_cost, platform_fees, other_fees, sale_date)
		 VALUES ($1, $2, $3, $4, $5, CURRENT_DATE)`,
		itemID, nullDecimal(price), nullDecimal(shipping), nullDecimal(platformFees), nullDecimal(otherFees),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSale: %v", err)
	}
}

// SetItemStatus overwrites an item's lifecycle status directly.
func SetItemStatus(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, status domain.ItemStatus) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `UPDATE items SET status = $2 WHERE id = $1`, itemID, string(status)); err != nil {
		t.Fatalf("testhelper: SetItemStatus: %v", err)
	}
}

// TagItem links an item to a tag.
func TagItem(t *testing.T, pool *pgxpool.Pool, itemID, tagID uuid.UUID) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `INSERT INTO item_tags (item_id, tag_id) VALUES ($1, $2)`, itemID, tagID); err != nil {
		t.Fatalf("testhelper: TagItem: %v", err)
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
