// Package item implements the Item repository using PostgreSQL.
// It owns the items table together with its item_images and item_tags
// children. Simple writes are built with squirrel; reads use raw SQL.
package item

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const itemColumns = `
    id, owner_id, title, status, ai_status, ai_error,
    category, brand_or_maker, style_or_era, material, color, dimensions_guess,
    condition_summary, condition_grade, is_restored,
    estimated_low_price, estimated_high_price, suggested_list_price,
    debug_notes, category_id, location_id, is_deleted, created_at, updated_at`

const insertItemSQL = `
INSERT INTO items (owner_id, title, status, ai_status)
VALUES ($1, $2, $3, $4)
RETURNING` + itemColumns

const getItemByIDSQL = `SELECT` + itemColumns + ` FROM items WHERE id = $1`

const listIdleSQL = `
SELECT id FROM items
WHERE owner_id = $1 AND ai_status = 'idle' AND NOT is_deleted
  AND EXISTS (SELECT 1 FROM item_images im WHERE im.item_id = items.id)
ORDER BY created_at
LIMIT $2`

const purgeDeletedSQL = `DELETE FROM items WHERE is_deleted AND updated_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key, including soft-deleted rows.
// Ownership is checked by the caller.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(querier.QueryRow(ctx, getItemByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return &it, nil
}

// List returns the owner's items, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.ItemFilter) ([]domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select(itemColumns).
		From("items").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")

	if !filter.IncludeDeleted {
		b = b.Where("NOT is_deleted")
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.AIStatus != nil {
		b = b.Where(squirrel.Eq{"ai_status": string(*filter.AIStatus)})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	rows, err := postgres.QueryBuilt(ctx, querier, b)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListIdleIDs returns up to limit non-deleted, idle items of the owner that
// have at least one image, oldest first.
func (r *Repo) ListIdleIDs(ctx context.Context, ownerID uuid.UUID, limit int) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listIdleSQL, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list idle items: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list idle items: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list idle items: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item for item.OwnerID and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertItemSQL,
		item.OwnerID, item.Title, string(item.Status), string(item.AIStatus))
	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", uuid.Nil)
	}
	return &created, nil
}

// UpdateTitle sets the title and returns the updated row.
func (r *Repo) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*domain.Item, error) {
	return r.updateReturning(ctx, id, map[string]any{"title": title})
}

// UpdateCondition applies the condition sub-resource and returns the updated row.
func (r *Repo) UpdateCondition(ctx context.Context, id uuid.UUID, upd domain.ConditionUpdate) (*domain.Item, error) {
	set := map[string]any{}
	switch {
	case upd.ClearGrade:
		set["condition_grade"] = nil
	case upd.Grade != nil:
		set["condition_grade"] = string(*upd.Grade)
	}
	switch {
	case upd.ClearSummary:
		set["condition_summary"] = nil
	case upd.Summary != nil:
		set["condition_summary"] = *upd.Summary
	}
	if upd.IsRestored != nil {
		set["is_restored"] = *upd.IsRestored
	}
	return r.updateReturning(ctx, id, set)
}

// SetCategory points the item at a category, or clears it when categoryID is nil.
func (r *Repo) SetCategory(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID) error {
	return r.update(ctx, id, map[string]any{"category_id": postgres.NullUUID(categoryID)})
}

// SetLocation points the item at an inventory location, or clears it.
func (r *Repo) SetLocation(ctx context.Context, id uuid.UUID, locationID *uuid.UUID) error {
	return r.update(ctx, id, map[string]any{"location_id": postgres.NullUUID(locationID)})
}

// SetStatus writes the lifecycle status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	return r.update(ctx, id, map[string]any{"status": string(status)})
}

// SetAIPending marks identification as in flight and clears the last error.
func (r *Repo) SetAIPending(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, map[string]any{
		"ai_status": string(domain.AIStatusPending),
		"ai_error":  nil,
	})
}

// SetAIError records a failed identification. Descriptive fields are untouched.
func (r *Repo) SetAIError(ctx context.Context, id uuid.UUID, msg string) error {
	return r.update(ctx, id, map[string]any{
		"ai_status": string(domain.AIStatusError),
		"ai_error":  msg,
	})
}

// SetAIComplete overwrites every AI-derived attribute and marks identification
// complete. The lifecycle status advances from new to identified against the
// stored row, so a listing or sale written while the model was running wins.
func (r *Repo) SetAIComplete(ctx context.Context, id uuid.UUID, ident domain.Identification) (*domain.Item, error) {
	return r.updateReturning(ctx, id, map[string]any{
		"category":             ident.Category,
		"brand_or_maker":       ident.BrandOrMaker,
		"style_or_era":         ident.StyleOrEra,
		"material":             ident.Material,
		"color":                ident.Color,
		"dimensions_guess":     ident.DimensionsGuess,
		"condition_summary":    ident.ConditionSummary,
		"estimated_low_price":  ident.EstimatedLowPrice,
		"estimated_high_price": ident.EstimatedHighPrice,
		"suggested_list_price": ident.SuggestedListPrice,
		"debug_notes":          ident.DebugNotes,
		"ai_status":            string(domain.AIStatusComplete),
		"ai_error":             nil,
		"status":               advanceIdentified,
	})
}

// advanceIdentified moves a new item to identified and leaves any later
// status alone.
var advanceIdentified = squirrel.Expr("CASE WHEN status = ? THEN ? ELSE status END",
	string(domain.ItemStatusNew), string(domain.ItemStatusIdentified))

// SoftDelete flags the item as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, map[string]any{"is_deleted": true})
}

// HardDelete removes the row. Images and tag links cascade.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, querier, postgres.Builder().Delete("items").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if n == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// PurgeDeletedBefore hard-deletes items soft-deleted before cutoff and
// returns how many rows were removed.
func (r *Repo) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, purgeDeletedSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge deleted items: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update("items").
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.ExecBuilt(ctx, querier, b)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if n == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) updateReturning(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.Item, error) {
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update("items").
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING" + itemColumns)

	row, err := postgres.QueryRowBuilt(ctx, querier, b)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	it, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return &it, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (domain.Item, error) {
	var (
		it                              domain.Item
		status, aiStatus                string
		aiError, category, brand, style pgtype.Text
		material, color, dims, summary  pgtype.Text
		grade, debugNotes               pgtype.Text
		low, high, suggested            decimal.NullDecimal
		categoryID, locationID          pgtype.UUID
	)

	err := row.Scan(
		&it.ID, &it.OwnerID, &it.Title, &status, &aiStatus, &aiError,
		&category, &brand, &style, &material, &color, &dims,
		&summary, &grade, &it.IsRestored,
		&low, &high, &suggested,
		&debugNotes, &categoryID, &locationID, &it.IsDeleted, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return domain.Item{}, err
	}

	it.Status = domain.ItemStatus(status)
	it.AIStatus = domain.AIStatus(aiStatus)
	it.AIError = postgres.TextPtr(aiError)
	it.Category = postgres.TextPtr(category)
	it.BrandOrMaker = postgres.TextPtr(brand)
	it.StyleOrEra = postgres.TextPtr(style)
	it.Material = postgres.TextPtr(material)
	it.Color = postgres.TextPtr(color)
	it.DimensionsGuess = postgres.TextPtr(dims)
	it.ConditionSummary = postgres.TextPtr(summary)
	if grade.Valid {
		g := domain.ConditionGrade(grade.String)
		it.ConditionGrade = &g
	}
	it.EstimatedLowPrice = postgres.DecimalPtr(low)
	it.EstimatedHighPrice = postgres.DecimalPtr(high)
	it.SuggestedListPrice = postgres.DecimalPtr(suggested)
	it.DebugNotes = postgres.TextPtr(debugNotes)
	it.CategoryID = postgres.UUIDPtr(categoryID)
	it.LocationID = postgres.UUIDPtr(locationID)

	return it, nil
}
