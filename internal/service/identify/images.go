package identify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// imageWait is how long a loader holds a partial batch open for more keys.
const imageWait = 2 * time.Millisecond

// imageLoader resolves an item's primary image. Concurrent loads on one
// loader share a single PrimaryImages query.
type imageLoader = dataloader.Loader[uuid.UUID, *domain.ItemImage]

// newImageLoader creates a loader that flushes once capacity keys queue up.
// A nil result means the item has no images.
func newImageLoader(items itemRepo, capacity int) *imageLoader {
	return dataloader.NewBatchedLoader(
		primaryImagesBatchFn(items),
		dataloader.WithWait[uuid.UUID, *domain.ItemImage](imageWait),
		dataloader.WithBatchCapacity[uuid.UUID, *domain.ItemImage](capacity),
	)
}

func primaryImagesBatchFn(items itemRepo) dataloader.BatchFunc[uuid.UUID, *domain.ItemImage] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.ItemImage] {
		results := make([]*dataloader.Result[*domain.ItemImage], len(keys))

		byItem, err := items.PrimaryImages(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.ItemImage]{Error: err}
			}
			return results
		}

		for i, key := range keys {
			var img *domain.ItemImage
			if v, ok := byItem[key]; ok {
				img = &v
			}
			results[i] = &dataloader.Result[*domain.ItemImage]{Data: img}
		}
		return results
	}
}
