// Package usage implements the append-only AI usage log using PostgreSQL.
package usage

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

// Repo provides AI usage persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, user_id, item_id, listing_id, endpoint, model, prompt_tokens, completion_tokens, total_cost_usd, created_at`

const insertSQL = `
INSERT INTO ai_usage (user_id, item_id, listing_id, endpoint, model, prompt_tokens, completion_tokens, total_cost_usd)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns

// Insert appends a usage record.
func (r *Repo) Insert(ctx context.Context, u domain.AIUsage) (*domain.AIUsage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertSQL,
		u.UserID,
		postgres.NullUUID(u.ItemID),
		postgres.NullUUID(u.ListingID),
		string(u.Endpoint),
		u.Model,
		postgres.NullInt8(u.PromptTokens),
		postgres.NullInt8(u.CompletionTokens),
		u.TotalCostUSD,
	)
	saved, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "ai_usage", uuid.Nil)
	}
	return &saved, nil
}

// ListByUser returns the user's usage records in the range, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, rng domain.DateRange) ([]domain.AIUsage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select(columns).
		From("ai_usage").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	start, end := rng.Bounds()
	if !start.IsZero() {
		b = b.Where(squirrel.GtOrEq{"created_at": start})
	}
	if !end.IsZero() {
		b = b.Where(squirrel.Lt{"created_at": end})
	}

	rows, err := postgres.QueryBuilt(ctx, querier, b)
	if err != nil {
		return nil, fmt.Errorf("list ai usage: %w", err)
	}
	defer rows.Close()

	records := []domain.AIUsage{}
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("list ai usage: %w", err)
		}
		records = append(records, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ai usage: %w", err)
	}
	return records, nil
}

func scan(row interface{ Scan(dest ...any) error }) (domain.AIUsage, error) {
	var (
		u                  domain.AIUsage
		itemID, listingID  pgtype.UUID
		endpoint           string
		prompt, completion pgtype.Int8
		cost               decimal.Decimal
	)
	if err := row.Scan(&u.ID, &u.UserID, &itemID, &listingID, &endpoint, &u.Model, &prompt, &completion, &cost, &u.CreatedAt); err != nil {
		return domain.AIUsage{}, err
	}
	u.ItemID = postgres.UUIDPtr(itemID)
	u.ListingID = postgres.UUIDPtr(listingID)
	u.Endpoint = domain.UsageEndpoint(endpoint)
	u.PromptTokens = postgres.Int8Ptr(prompt)
	u.CompletionTokens = postgres.Int8Ptr(completion)
	u.TotalCostUSD = cost
	return u, nil
}
