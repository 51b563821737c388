package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
)

// ---------------------------------------------------------------------------
// Tag links (M2M via item_tags)
// ---------------------------------------------------------------------------

const getTagIDsSQL = `
SELECT it.tag_id
FROM item_tags it
JOIN tags t ON t.id = it.tag_id
WHERE it.item_id = $1
ORDER BY t.name`

const deleteTagLinksSQL = `DELETE FROM item_tags WHERE item_id = $1`

const insertTagLinksSQL = `
INSERT INTO item_tags (item_id, tag_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

// GetTagIDs returns the ids of tags linked to an item, ordered by tag name.
func (r *Repo) GetTagIDs(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getTagIDsSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item tags: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("get item tags: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get item tags: %w", err)
	}
	return ids, nil
}

// ReplaceTags swaps the item's whole tag set. Callers run it inside a
// transaction so a failed insert leaves the old set in place.
func (r *Repo) ReplaceTags(ctx context.Context, itemID uuid.UUID, tagIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteTagLinksSQL, itemID); err != nil {
		return fmt.Errorf("clear item tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := querier.Exec(ctx, insertTagLinksSQL, itemID, tagIDs); err != nil {
		return postgres.MapError(err, "tag", uuid.Nil)
	}
	return nil
}
