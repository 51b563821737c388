package item

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Images
// ---------------------------------------------------------------------------

const imageColumns = `id, item_id, url, edited_url, edit_prompt, edited_at, created_at`

const listImagesSQL = `
SELECT ` + imageColumns + `
FROM item_images
WHERE item_id = $1
ORDER BY created_at, id`

const getImageSQL = `SELECT ` + imageColumns + ` FROM item_images WHERE id = $1`

const primaryImagesSQL = `
SELECT DISTINCT ON (item_id) ` + imageColumns + `
FROM item_images
WHERE item_id = ANY($1::uuid[])
ORDER BY item_id, created_at, id`

const insertImageSQL = `
INSERT INTO item_images (item_id, url)
VALUES ($1, $2)
RETURNING ` + imageColumns

// AddImage attaches an uploaded image URL to an item.
func (r *Repo) AddImage(ctx context.Context, itemID uuid.UUID, url string) (*domain.ItemImage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	img, err := scanImage(querier.QueryRow(ctx, insertImageSQL, itemID, url))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	return &img, nil
}

// ListImages returns the item's images in upload order; the first is primary.
func (r *Repo) ListImages(ctx context.Context, itemID uuid.UUID) ([]domain.ItemImage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listImagesSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item images: %w", err)
	}
	defer rows.Close()

	images := []domain.ItemImage{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("list item images: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list item images: %w", err)
	}
	return images, nil
}

// PrimaryImages returns the first image of each item keyed by item id.
// Items without images are absent from the map.
func (r *Repo) PrimaryImages(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.ItemImage, error) {
	result := make(map[uuid.UUID]domain.ItemImage, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, primaryImagesSQL, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("get primary images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("get primary images: %w", err)
		}
		result[img.ItemID] = img
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get primary images: %w", err)
	}
	return result, nil
}

// GetImage returns a single image by primary key.
func (r *Repo) GetImage(ctx context.Context, imageID uuid.UUID) (*domain.ItemImage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	img, err := scanImage(querier.QueryRow(ctx, getImageSQL, imageID))
	if err != nil {
		return nil, postgres.MapError(err, "item_image", imageID)
	}
	return &img, nil
}

// SetEdited stores the edited variant of an image.
func (r *Repo) SetEdited(ctx context.Context, imageID uuid.UUID, editedURL, prompt string, at time.Time) (*domain.ItemImage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update("item_images").
		Set("edited_url", editedURL).
		Set("edit_prompt", prompt).
		Set("edited_at", at).
		Where(squirrel.Eq{"id": imageID}).
		Suffix("RETURNING " + imageColumns)

	row, err := postgres.QueryRowBuilt(ctx, querier, b)
	if err != nil {
		return nil, fmt.Errorf("set edited image: %w", err)
	}
	img, err := scanImage(row)
	if err != nil {
		return nil, postgres.MapError(err, "item_image", imageID)
	}
	return &img, nil
}

func scanImage(row scanner) (domain.ItemImage, error) {
	var (
		img                   domain.ItemImage
		editedURL, editPrompt pgtype.Text
		editedAt              pgtype.Timestamptz
	)
	if err := row.Scan(&img.ID, &img.ItemID, &img.URL, &editedURL, &editPrompt, &editedAt, &img.CreatedAt); err != nil {
		return domain.ItemImage{}, err
	}
	img.EditedURL = postgres.TextPtr(editedURL)
	img.EditPrompt = postgres.TextPtr(editPrompt)
	img.EditedAt = postgres.TimePtr(editedAt)
	return img, nil
}
