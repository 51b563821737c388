package reference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Merge repoints every dependent of FromID to ToID and deletes FromID, all
// in one transaction.
func (s *Service) Merge(ctx context.Context, actor domain.Actor, input MergeInput) (*domain.MergeResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := requireKind(input.Kind); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var counts map[string]int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.mustExist(txCtx, input.Kind, input.FromID, "fromId"); err != nil {
			return err
		}
		if err := s.mustExist(txCtx, input.Kind, input.ToID, "toId"); err != nil {
			return err
		}

		var err error
		counts, err = s.refs.Merge(txCtx, input.Kind, input.FromID, input.ToID)
		if err != nil {
			return fmt.Errorf("merge %s: %w", input.Kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reference records merged",
		slog.String("user_id", actor.UserID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("from_id", input.FromID.String()),
		slog.String("to_id", input.ToID.String()),
		slog.Any("repointed", counts),
	)

	return &domain.MergeResult{FromID: input.FromID, ToID: input.ToID, Repointed: counts}, nil
}

// mustExist reports a missing record as a validation error on field.
func (s *Service) mustExist(ctx context.Context, kind domain.RefKind, id uuid.UUID, field string) error {
	_, err := s.refs.Get(ctx, kind, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError(field, kind.Label()+" not found")
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", kind, err)
	}
	return nil
}
