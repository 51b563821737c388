// Package identify runs AI vision identification over items, one at a time
// or in bounded batches.
package identify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/aiusage"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	PrimaryImages(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.ItemImage, error)
	ListIdleIDs(ctx context.Context, ownerID uuid.UUID, limit int) ([]uuid.UUID, error)
	SetAIPending(ctx context.Context, id uuid.UUID) error
	SetAIError(ctx context.Context, id uuid.UUID, msg string) error
	SetAIComplete(ctx context.Context, id uuid.UUID, ident domain.Identification) (*domain.Item, error)
}

// vision identifies an item from its primary photo. Usage is returned
// whenever the model reported it, including when err is a parse failure.
type vision interface {
	Identify(ctx context.Context, imageURL string) (domain.Identification, *domain.TokenUsage, error)
	Model() string
}

type usageRecorder interface {
	Record(ctx context.Context, e aiusage.Entry)
}

// Config bounds the orchestrator.
type Config struct {
	CallTimeout time.Duration
	GroupSize   int
	MaxBatch    int
}

const (
	DefaultCallTimeout = 60 * time.Second
	DefaultGroupSize   = 3
	DefaultMaxBatch    = 50
)

func (c Config) withDefaults() Config {
	if c.CallTimeout <= 0 {
		c.CallTimeout = DefaultCallTimeout
	}
	if c.GroupSize <= 0 {
		c.GroupSize = DefaultGroupSize
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = DefaultMaxBatch
	}
	return c
}

// Service orchestrates identification calls.
type Service struct {
	items  itemRepo
	vision vision
	usage  usageRecorder
	cfg    Config
	log    *slog.Logger
}

// NewService creates a new identification service.
func NewService(log *slog.Logger, items itemRepo, v vision, usage usageRecorder, cfg Config) *Service {
	return &Service{
		items:  items,
		vision: v,
		usage:  usage,
		cfg:    cfg.withDefaults(),
		log:    log.With("service", "identify"),
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
