package identify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/metrics"
)

// Batch item statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BatchResult is the outcome of one item in a batch.
type BatchResult struct {
	ItemID uuid.UUID
	Status string
	Error  string
}

// BatchSummary holds per-item results in input order plus totals.
type BatchSummary struct {
	Results        []BatchResult
	TotalProcessed int
	TotalErrors    int
}

// BatchIdentify identifies up to MaxBatch items. Items run concurrently in
// groups of GroupSize and groups run one after another. A failed item never
// stops the batch.
func (s *Service) BatchIdentify(ctx context.Context, actor domain.Actor, itemIDs []uuid.UUID) (*BatchSummary, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	switch {
	case len(itemIDs) == 0:
		return nil, domain.NewValidationError("itemIds", "at least one item id is required")
	case len(itemIDs) > s.cfg.MaxBatch:
		return nil, domain.NewValidationError("itemIds", fmt.Sprintf("max %d items per batch", s.cfg.MaxBatch))
	}
	for i, id := range itemIDs {
		if id == uuid.Nil {
			return nil, domain.NewValidationError(fmt.Sprintf("itemIds[%d]", i), "invalid id")
		}
	}

	return s.run(ctx, actor, itemIDs), nil
}

// IdentifyIdle identifies every idle, non-deleted item of the owner that
// has images. It is meant for unattended runs.
func (s *Service) IdentifyIdle(ctx context.Context, ownerID uuid.UUID, limit int) (*BatchSummary, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewValidationError("owner", "required")
	}
	ids, err := s.items.ListIdleIDs(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list idle items: %w", err)
	}

	s.log.InfoContext(ctx, "idle items found",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(ids)),
	)
	return s.run(ctx, domain.NewActor(ownerID, false), ids), nil
}

func (s *Service) run(ctx context.Context, actor domain.Actor, ids []uuid.UUID) *BatchSummary {
	summary := &BatchSummary{Results: make([]BatchResult, len(ids))}
	images := newImageLoader(s.items, s.cfg.GroupSize)

	for start := 0; start < len(ids); start += s.cfg.GroupSize {
		end := min(start+s.cfg.GroupSize, len(ids))

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				res := BatchResult{ItemID: ids[i], Status: StatusSuccess}
				if _, err := s.identify(ctx, actor, ids[i], images); err != nil {
					res.Status = StatusError
					res.Error = publicMessage(err)
				}
				summary.Results[i] = res
				return nil
			})
		}
		_ = g.Wait()
	}

	for _, r := range summary.Results {
		summary.TotalProcessed++
		if r.Status == StatusError {
			summary.TotalErrors++
		}
		metrics.RecordBatchItem(r.Status)
	}

	s.log.InfoContext(ctx, "batch identification finished",
		slog.String("user_id", actor.UserID.String()),
		slog.Int("processed", summary.TotalProcessed),
		slog.Int("errors", summary.TotalErrors),
	)
	return summary
}

// publicMessage renders err for a batch result without leaking internals.
func publicMessage(err error) string {
	var (
		ve *domain.ValidationError
		ue *domain.UpstreamError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &ue):
		return ue.Message
	case errors.Is(err, domain.ErrNotFound):
		return "item not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	}
	return "internal error"
}
