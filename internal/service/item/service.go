package item

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

type itemRepo interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, ownerID uuid.UUID, filter domain.ItemFilter) ([]domain.Item, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*domain.Item, error)
	UpdateCondition(ctx context.Context, id uuid.UUID, upd domain.ConditionUpdate) (*domain.Item, error)
	SetCategory(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID) error
	SetLocation(ctx context.Context, id uuid.UUID, locationID *uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	AddImage(ctx context.Context, itemID uuid.UUID, url string) (*domain.ItemImage, error)
	ListImages(ctx context.Context, itemID uuid.UUID) ([]domain.ItemImage, error)
	PrimaryImages(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.ItemImage, error)

	GetTagIDs(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error)
	ReplaceTags(ctx context.Context, itemID uuid.UUID, tagIDs []uuid.UUID) error
}

type purchaseRepo interface {
	GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Purchase, error)
	GetByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.Purchase, error)
	Upsert(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error)
}

type listingRepo interface {
	GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Listing, error)
	GetByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.Listing, error)
	Upsert(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
}

type saleRepo interface {
	GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Sale, error)
	GetByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.Sale, error)
	Upsert(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
}

type refChecker interface {
	Exists(ctx context.Context, kind domain.RefKind, id uuid.UUID) (bool, error)
	CountExisting(ctx context.Context, kind domain.RefKind, ids []uuid.UUID) (int, error)
}

type imageProcessor interface {
	Process(data []byte) ([]byte, error)
}

type blobStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxImagesPerItem = 5
	MaxTitleLength   = 200
)

// Service manages items and their sub-resources.
type Service struct {
	items     itemRepo
	purchases purchaseRepo
	listings  listingRepo
	sales     saleRepo
	refs      refChecker
	images    imageProcessor
	store     blobStore
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	purchases purchaseRepo,
	listings listingRepo,
	sales saleRepo,
	refs refChecker,
	images imageProcessor,
	store blobStore,
	tx txManager,
) *Service {
	return &Service{
		items:     items,
		purchases: purchases,
		listings:  listings,
		sales:     sales,
		refs:      refs,
		images:    images,
		store:     store,
		tx:        tx,
		log:       log.With("service", "item"),
		now:       time.Now,
	}
}

// loadAccessible returns a live item the actor may access. Items owned by
// someone else and soft-deleted items are reported as not found.
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

// requireRef returns a field validation error when a referenced record is missing.
func (s *Service) requireRef(ctx context.Context, kind domain.RefKind, id *uuid.UUID, field string) error {
	if id == nil {
		return nil
	}
	ok, err := s.refs.Exists(ctx, kind, *id)
	if err != nil {
		return fmt.Errorf("check %s: %w", kind, err)
	}
	if !ok {
		return domain.NewValidationError(field, kind.Label()+" not found")
	}
	return nil
}
