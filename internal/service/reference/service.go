package reference

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

type refRepo interface {
	List(ctx context.Context, kind domain.RefKind) ([]domain.RefRecord, error)
	Get(ctx context.Context, kind domain.RefKind, id uuid.UUID) (*domain.RefRecord, error)
	Exists(ctx context.Context, kind domain.RefKind, id uuid.UUID) (bool, error)
	Create(ctx context.Context, rec domain.RefRecord) (*domain.RefRecord, error)
	Merge(ctx context.Context, kind domain.RefKind, fromID, toID uuid.UUID) (map[string]int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength  = 100
	MaxNotesLength = 1000
)

// Service manages the global reference tables.
type Service struct {
	refs refRepo
	tx   txManager
	log  *slog.Logger
}

// NewService creates a new reference data service.
func NewService(log *slog.Logger, refs refRepo, tx txManager) *Service {
	return &Service{
		refs: refs,
		tx:   tx,
		log:  log.With("service", "reference"),
	}
}

func requireActor(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	return nil
}

func requireKind(kind domain.RefKind) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", "unknown reference kind")
	}
	return nil
}
