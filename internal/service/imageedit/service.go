// Package imageedit replaces item photo backgrounds through an external
// image-editing service.
package imageedit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/metrics"
	"github.com/heartmarshall/resale-backend/internal/provider"
	"github.com/heartmarshall/resale-backend/internal/service/aiusage"
)

// DefaultPrompt is used when the caller gives no edit instruction.
const DefaultPrompt = "Remove the background and place the item on a pure white background."

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetImage(ctx context.Context, imageID uuid.UUID) (*domain.ItemImage, error)
	SetEdited(ctx context.Context, imageID uuid.UUID, editedURL, prompt string, at time.Time) (*domain.ItemImage, error)
}

type editor interface {
	Edit(ctx context.Context, imageURL, prompt string) (provider.EditResult, error)
	Model() string
}

type blobStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}

type usageRecorder interface {
	Record(ctx context.Context, e aiusage.Entry)
}

// Service edits item images.
type Service struct {
	items    itemRepo
	editor   editor
	store    blobStore
	usage    usageRecorder
	flatCost decimal.Decimal
	timeout  time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new image edit service. flatCost is charged per
// successful edit.
func NewService(
	log *slog.Logger,
	items itemRepo,
	ed editor,
	store blobStore,
	usage usageRecorder,
	flatCost decimal.Decimal,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Service{
		items:    items,
		editor:   ed,
		store:    store,
		usage:    usage,
		flatCost: flatCost,
		timeout:  timeout,
		now:      time.Now,
		log:      log.With("service", "imageedit"),
	}
}

// EditImage runs the editor over the image and stores the result next to
// the original. A nil or blank prompt uses DefaultPrompt.
func (s *Service) EditImage(ctx context.Context, actor domain.Actor, imageID uuid.UUID, prompt *string) (*domain.ItemImage, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}

	img, err := s.items.GetImage(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}
	it, err := s.items.GetByID(ctx, img.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it.IsDeleted || !actor.CanAccess(it.OwnerID) {
		return nil, fmt.Errorf("image %s: %w", imageID, domain.ErrNotFound)
	}

	instruction := DefaultPrompt
	if prompt != nil && strings.TrimSpace(*prompt) != "" {
		instruction = strings.TrimSpace(*prompt)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	start := time.Now()
	res, err := s.editor.Edit(callCtx, img.URL, instruction)
	cancel()
	metrics.RecordAICall(domain.UsageImageEdit.String(), metrics.Outcome(err), time.Since(start).Seconds())
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return nil, upstream
		}
		return nil, domain.NewUpstreamError("image editor", err)
	}

	s.usage.Record(ctx, aiusage.Entry{
		UserID:   actor.UserID,
		ItemID:   &it.ID,
		Endpoint: domain.UsageImageEdit,
		Model:    s.editor.Model(),
		FlatCost: &s.flatCost,
	})

	contentType := res.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	at := s.now()
	path := fmt.Sprintf("%s/%s/edited_%d.png", it.OwnerID, it.ID, at.UnixMilli())
	url, err := s.store.Upload(ctx, path, contentType, res.Data)
	if err != nil {
		return nil, domain.NewUpstreamError("storage", err)
	}

	updated, err := s.items.SetEdited(ctx, imageID, url, instruction, at)
	if err != nil {
		return nil, fmt.Errorf("save edited image: %w", err)
	}

	s.log.InfoContext(ctx, "image edited",
		slog.String("user_id", actor.UserID.String()),
		slog.String("item_id", it.ID.String()),
		slog.String("image_id", imageID.String()),
	)
	return updated, nil
}
