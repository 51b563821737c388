package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// ErrNoImagesStored is returned by ImportItem when every upload failed.
var ErrNoImagesStored = errors.New("no image could be stored")

// CreateItem creates an item for the actor and stores its images. Image
// storage is all-or-nothing: if any upload fails the item is hard-deleted
// and the error returned.
func (s *Service) CreateItem(ctx context.Context, actor domain.Actor, input CreateItemInput) (*ItemDetail, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.createRow(ctx, actor.UserID, input.Title)
	if err != nil {
		return nil, err
	}

	images := make([]domain.ItemImage, 0, len(input.Images))
	for idx, upload := range input.Images {
		img, err := s.storeImage(ctx, created.ID, idx, upload)
		if err != nil {
			s.compensate(ctx, created.ID, err)
			return nil, err
		}
		images = append(images, *img)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("item_id", created.ID.String()),
		slog.Int("images", len(images)),
	)

	return &ItemDetail{Item: *created, Images: images, TagIDs: []uuid.UUID{}}, nil
}

// ImportItem creates an item owned by ownerID and stores as many images as
// it can. The item survives partial failure; when no image could be stored
// it is hard-deleted and ErrNoImagesStored is returned with the result.
func (s *Service) ImportItem(ctx context.Context, ownerID uuid.UUID, input CreateItemInput) (*ImportResult, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.createRow(ctx, ownerID, input.Title)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Item: created, UploadErrors: []string{}}
	for idx, upload := range input.Images {
		if _, err := s.storeImage(ctx, created.ID, idx, upload); err != nil {
			result.Failed++
			result.UploadErrors = append(result.UploadErrors, fmt.Sprintf("%s: %v", imageName(idx, upload), err))
			s.log.WarnContext(ctx, "import image failed",
				slog.String("item_id", created.ID.String()),
				slog.Int("index", idx),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Uploaded++
	}

	if result.Uploaded == 0 {
		s.compensate(ctx, created.ID, ErrNoImagesStored)
		result.Item = nil
		return result, ErrNoImagesStored
	}

	s.log.InfoContext(ctx, "item imported",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", created.ID.String()),
		slog.Int("uploaded", result.Uploaded),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *Service) createRow(ctx context.Context, ownerID uuid.UUID, title string) (*domain.Item, error) {
	created, err := s.items.Create(ctx, &domain.Item{
		OwnerID:  ownerID,
		Title:    domain.CleanName(title),
		Status:   domain.Transition(domain.ItemStatusNew, domain.EventCreated),
		AIStatus: domain.AIStatusIdle,
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return created, nil
}

// storeImage normalizes one upload, writes it to the blob store and records
// the image row.
func (s *Service) storeImage(ctx context.Context, itemID uuid.UUID, idx int, upload ImageUpload) (*domain.ItemImage, error) {
	data, err := s.images.Process(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", imageName(idx, upload), err)
	}

	path := fmt.Sprintf("%s/%d-%d.jpg", itemID, s.now().UnixMilli(), idx)
	url, err := s.store.Upload(ctx, path, "image/jpeg", data)
	if err != nil {
		return nil, domain.NewUpstreamError("storage", err)
	}

	img, err := s.items.AddImage(ctx, itemID, url)
	if err != nil {
		return nil, fmt.Errorf("add image: %w", err)
	}
	return img, nil
}

// compensate removes a half-created item. It runs detached from ctx so a
// cancelled request still cleans up.
func (s *Service) compensate(ctx context.Context, itemID uuid.UUID, cause error) {
	if err := s.items.HardDelete(context.WithoutCancel(ctx), itemID); err != nil {
		s.log.ErrorContext(ctx, "compensating delete failed",
			slog.String("item_id", itemID.String()),
			slog.String("cause", cause.Error()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.WarnContext(ctx, "item removed after failed upload",
		slog.String("item_id", itemID.String()),
		slog.String("cause", cause.Error()),
	)
}

func imageName(idx int, upload ImageUpload) string {
	if upload.Filename != "" {
		return upload.Filename
	}
	return fmt.Sprintf("image %d", idx+1)
}
