package identify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/metrics"
	"github.com/heartmarshall/resale-backend/internal/service/aiusage"
)

// Identify runs the vision model over the item's primary image and writes
// the result. On failure only ai_status and ai_error change.
func (s *Service) Identify(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*domain.Item, error) {
	return s.identify(ctx, actor, itemID, newImageLoader(s.items, 1))
}

func (s *Service) identify(ctx context.Context, actor domain.Actor, itemID uuid.UUID, images *imageLoader) (*domain.Item, error) {
	if _, err := s.loadAccessible(ctx, actor, itemID); err != nil {
		return nil, err
	}

	primary, err := images.Load(ctx, itemID)()
	if err != nil {
		return nil, fmt.Errorf("primary image: %w", err)
	}
	if primary == nil {
		return nil, domain.NewValidationError("images", "item has no images to identify")
	}

	if err := s.items.SetAIPending(ctx, itemID); err != nil {
		return nil, fmt.Errorf("mark pending: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	start := time.Now()
	ident, tokens, err := s.vision.Identify(callCtx, primary.URL)
	cancel()
	metrics.RecordAICall(domain.UsageAnalyze.String(), metrics.Outcome(err), time.Since(start).Seconds())

	if tokens != nil {
		s.usage.Record(ctx, aiusage.Entry{
			UserID:   actor.UserID,
			ItemID:   &itemID,
			Endpoint: domain.UsageAnalyze,
			Model:    s.vision.Model(),
			Tokens:   tokens,
		})
	}

	if err != nil {
		var upstream *domain.UpstreamError
		if !errors.As(err, &upstream) {
			upstream = domain.NewUpstreamError("vision", err)
		}
		s.fail(ctx, itemID, upstream.Message)
		return nil, upstream
	}

	updated, err := s.items.SetAIComplete(ctx, itemID, ident)
	if err != nil {
		s.fail(ctx, itemID, "could not save identification")
		return nil, fmt.Errorf("save identification: %w", err)
	}

	s.log.InfoContext(ctx, "item identified",
		slog.String("user_id", actor.UserID.String()),
		slog.String("item_id", itemID.String()),
		slog.String("status", updated.Status.String()),
	)
	return updated, nil
}

// fail records the error state. It runs detached from ctx so a timed-out
// call still leaves the item out of pending.
func (s *Service) fail(ctx context.Context, itemID uuid.UUID, msg string) {
	if err := s.items.SetAIError(context.WithoutCancel(ctx), itemID, msg); err != nil {
		s.log.ErrorContext(ctx, "mark identification error",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.WarnContext(ctx, "identification failed",
		slog.String("item_id", itemID.String()),
		slog.String("reason", msg),
	)
}
