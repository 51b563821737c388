// Package copywriter generates marketplace listing copy for items.
package copywriter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/provider"
	"github.com/heartmarshall/resale-backend/internal/service/aiusage"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListImages(ctx context.Context, itemID uuid.UUID) ([]domain.ItemImage, error)
}

type listingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

type refRepo interface {
	Get(ctx context.Context, kind domain.RefKind, id uuid.UUID) (*domain.RefRecord, error)
}

type copyStore interface {
	GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.SavedCopy, error)
	Upsert(ctx context.Context, c *domain.SavedCopy) (*domain.SavedCopy, error)
}

type copyModel interface {
	WriteCopy(ctx context.Context, req provider.CopyRequest) (provider.ListingCopy, *domain.TokenUsage, error)
	Model() string
}

type usageRecorder interface {
	Record(ctx context.Context, e aiusage.Entry)
}

// Service produces listing copy and keeps the user's saved version.
type Service struct {
	items    itemRepo
	listings listingRepo
	refs     refRepo
	saved    copyStore
	model    copyModel
	usage    usageRecorder
	timeout  time.Duration
	log      *slog.Logger
}

// NewService creates a new copywriting service. timeout bounds each model call.
func NewService(
	log *slog.Logger,
	items itemRepo,
	listings listingRepo,
	refs refRepo,
	saved copyStore,
	model copyModel,
	usage usageRecorder,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Service{
		items:    items,
		listings: listings,
		refs:     refs,
		saved:    saved,
		model:    model,
		usage:    usage,
		timeout:  timeout,
		log:      log.With("service", "copywriter"),
	}
}

func (s *Service) loadAccessible(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Item, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it.IsDeleted || !actor.CanAccess(it.OwnerID) {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return it, nil
}
