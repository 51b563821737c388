package item

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// PurgeDeleted hard-deletes items soft-deleted more than olderThan ago.
// Admin only.
func (s *Service) PurgeDeleted(ctx context.Context, actor domain.Actor, olderThan time.Duration) (int64, error) {
	if actor.IsAnonymous() {
		return 0, domain.ErrUnauthorized
	}
	if !actor.Admin {
		return 0, domain.ErrForbidden
	}
	if olderThan <= 0 {
		return 0, domain.NewValidationError("older_than", "must be positive")
	}

	cutoff := s.now().Add(-olderThan)
	n, err := s.items.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge deleted items: %w", err)
	}

	s.log.InfoContext(ctx, "deleted items purged",
		slog.Time("cutoff", cutoff),
		slog.Int64("count", n),
	)
	return n, nil
}
