// Package reference implements the reference-data repository using PostgreSQL.
// One Repo serves all five name-keyed tables (categories, inventory locations,
// acquisition sources, listing platforms, tags); the kind selects the table.
package reference

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Repo provides reference-data persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reference-data repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Table metadata
// ---------------------------------------------------------------------------

// table describes how a kind is stored. columns always yields the same
// eight columns so a single scanner covers every kind.
type table struct {
	name    string
	columns string
}

var tables = map[domain.RefKind]table{
	domain.RefCategory: {
		name:    "categories",
		columns: "id, name, created_at, parent_id, NULL::text, NULL::text, NULL::text, NULL::numeric",
	},
	domain.RefLocation: {
		name:    "inventory_locations",
		columns: "id, name, created_at, NULL::uuid, notes, NULL::text, NULL::text, NULL::numeric",
	},
	domain.RefSource: {
		name:    "acquisition_sources",
		columns: "id, name, created_at, NULL::uuid, notes, source_type::text, NULL::text, NULL::numeric",
	},
	domain.RefPlatform: {
		name:    "listing_platforms",
		columns: "id, name, created_at, NULL::uuid, NULL::text, NULL::text, slug, default_fee_percent",
	},
	domain.RefTag: {
		name:    "tags",
		columns: "id, name, created_at, NULL::uuid, NULL::text, NULL::text, NULL::text, NULL::numeric",
	},
}

// dependent is a foreign-key column that must be repointed on merge.
// Statements take $1 = from id and $2 = to id unless fromOnly is set.
type dependent struct {
	key      string
	sql      string
	fromOnly bool
}

var dependents = map[domain.RefKind][]dependent{
	domain.RefCategory: {
		{key: "items.category_id", sql: `UPDATE items SET category_id = $2 WHERE category_id = $1`},
		// The surviving category must not end up as its own parent.
		{key: "categories.parent_id", sql: `
UPDATE categories SET parent_id = CASE WHEN id = $2 THEN NULL ELSE $2::uuid END
WHERE parent_id = $1`},
	},
	domain.RefLocation: {
		{key: "items.location_id", sql: `UPDATE items SET location_id = $2 WHERE location_id = $1`},
	},
	domain.RefSource: {
		{key: "purchases.source_id", sql: `UPDATE purchases SET source_id = $2 WHERE source_id = $1`},
	},
	domain.RefPlatform: {
		{key: "listings.platform_id", sql: `UPDATE listings SET platform_id = $2 WHERE platform_id = $1`},
	},
	domain.RefTag: {
		{key: "item_tags.tag_id", sql: `
INSERT INTO item_tags (item_id, tag_id)
SELECT item_id, $2 FROM item_tags WHERE tag_id = $1
ON CONFLICT DO NOTHING`},
		{key: "item_tags.removed", sql: `DELETE FROM item_tags WHERE tag_id = $1`, fromOnly: true},
	},
}

func lookup(kind domain.RefKind) (table, error) {
	t, ok := tables[kind]
	if !ok {
		return table{}, domain.NewValidationError("kind", fmt.Sprintf("unknown reference kind %q", kind))
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every record of the kind ordered by name.
func (r *Repo) List(ctx context.Context, kind domain.RefKind) ([]domain.RefRecord, error) {
	t, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.QueryBuilt(ctx, querier,
		postgres.Builder().Select(t.columns).From(t.name).OrderBy("name"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	records := []domain.RefRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", kind, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return records, nil
}

// Get returns a record by id or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, kind domain.RefKind, id uuid.UUID) (*domain.RefRecord, error) {
	t, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRowBuilt(ctx, querier,
		postgres.Builder().Select(t.columns).From(t.name).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}
	rec, err := scanRecord(row, kind)
	if err != nil {
		return nil, postgres.MapError(err, string(kind), id)
	}
	return &rec, nil
}

// Exists reports whether a record of the kind exists.
func (r *Repo) Exists(ctx context.Context, kind domain.RefKind, id uuid.UUID) (bool, error) {
	t, err := lookup(kind)
	if err != nil {
		return false, err
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	q := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, t.name)
	if err := querier.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s exists: %w", kind, err)
	}
	return exists, nil
}

// CountExisting returns how many of ids exist as records of the kind.
// Duplicates in ids are counted once.
func (r *Repo) CountExisting(ctx context.Context, kind domain.RefKind, ids []uuid.UUID) (int, error) {
	t, err := lookup(kind)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	q := fmt.Sprintf(`SELECT count(*) FROM %s WHERE id = ANY($1::uuid[])`, t.name)
	if err := querier.QueryRow(ctx, q, ids).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a record. A duplicate name (or platform slug) returns
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec domain.RefRecord) (*domain.RefRecord, error) {
	t, err := lookup(rec.Kind)
	if err != nil {
		return nil, err
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	values := map[string]any{"name": rec.Name}
	switch rec.Kind {
	case domain.RefCategory:
		values["parent_id"] = postgres.NullUUID(rec.ParentID)
	case domain.RefLocation:
		values["notes"] = postgres.NullText(rec.Notes)
	case domain.RefSource:
		values["notes"] = postgres.NullText(rec.Notes)
		if rec.SourceType != "" {
			values["source_type"] = string(rec.SourceType)
		}
	case domain.RefPlatform:
		values["slug"] = rec.Slug
		values["default_fee_percent"] = postgres.NullDecimal(rec.DefaultFeePercent)
	}

	row, err := postgres.QueryRowBuilt(ctx, querier,
		postgres.Builder().Insert(t.name).SetMap(values).Suffix("RETURNING "+t.columns))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", rec.Kind, err)
	}
	created, err := scanRecord(row, rec.Kind)
	if err != nil {
		return nil, postgres.MapError(err, string(rec.Kind), uuid.Nil)
	}
	return &created, nil
}

// Merge repoints every dependent row of fromID to toID and deletes fromID.
// It returns the affected row count per dependent column. Callers must run
// it inside a transaction.
func (r *Repo) Merge(ctx context.Context, kind domain.RefKind, fromID, toID uuid.UUID) (map[string]int64, error) {
	t, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	counts := make(map[string]int64, len(dependents[kind]))
	for _, dep := range dependents[kind] {
		args := []any{fromID, toID}
		if dep.fromOnly {
			args = args[:1]
		}
		tag, err := querier.Exec(ctx, dep.sql, args...)
		if err != nil {
			return nil, postgres.MapError(err, dep.key, fromID)
		}
		counts[dep.key] = tag.RowsAffected()
	}

	n, err := postgres.ExecBuilt(ctx, querier,
		postgres.Builder().Delete(t.name).Where(squirrel.Eq{"id": fromID}))
	if err != nil {
		return nil, postgres.MapError(err, string(kind), fromID)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s %s: %w", kind, fromID, domain.ErrNotFound)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRecord(row interface{ Scan(dest ...any) error }, kind domain.RefKind) (domain.RefRecord, error) {
	var (
		rec                     domain.RefRecord
		parentID                pgtype.UUID
		notes, sourceType, slug pgtype.Text
		feePercent              decimal.NullDecimal
	)
	if err := row.Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &parentID, &notes, &sourceType, &slug, &feePercent); err != nil {
		return domain.RefRecord{}, err
	}
	rec.Kind = kind
	rec.ParentID = postgres.UUIDPtr(parentID)
	rec.Notes = postgres.TextPtr(notes)
	if sourceType.Valid {
		rec.SourceType = domain.SourceType(sourceType.String)
	}
	rec.Slug = slug.String
	rec.DefaultFeePercent = postgres.DecimalPtr(feePercent)
	return rec, nil
}
