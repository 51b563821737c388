package reference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// List returns every record of kind ordered by name.
func (s *Service) List(ctx context.Context, actor domain.Actor, kind domain.RefKind) ([]domain.RefRecord, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := requireKind(kind); err != nil {
		return nil, err
	}
	recs, err := s.refs.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return recs, nil
}

// Get returns one record.
func (s *Service) Get(ctx context.Context, actor domain.Actor, kind domain.RefKind, id uuid.UUID) (*domain.RefRecord, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := requireKind(kind); err != nil {
		return nil, err
	}
	return s.refs.Get(ctx, kind, id)
}

// Create inserts a new record. A category parent must exist.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.RefRecord, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := requireKind(input.Kind); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Kind == domain.RefCategory && input.ParentID != nil {
		ok, err := s.refs.Exists(ctx, domain.RefCategory, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("check parent: %w", err)
		}
		if !ok {
			return nil, domain.NewValidationError("parentId", "Category not found")
		}
	}

	created, err := s.refs.Create(ctx, input.record())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s with that name already exists: %w", input.Kind.Label(), domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create %s: %w", input.Kind, err)
	}

	s.log.InfoContext(ctx, "reference record created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("id", created.ID.String()),
	)
	return created, nil
}
