package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// UpdateItem applies a partial update to the item's own fields.
func (s *Service) UpdateItem(ctx context.Context, actor domain.Actor, input UpdateItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadAccessible(ctx, actor, input.ItemID); err != nil {
		return nil, err
	}

	updated, err := s.items.UpdateTitle(ctx, input.ItemID, domain.CleanName(*input.Title))
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

// DeleteItem soft-deletes the item.
func (s *Service) DeleteItem(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	it, err := s.loadAccessible(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.items.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("item_id", id.String()),
		slog.Bool("by_admin", it.OwnerID != actor.UserID),
	)
	return nil
}

// AssignCategory points the item at a category; nil clears it.
func (s *Service) AssignCategory(ctx context.Context, actor domain.Actor, id uuid.UUID, categoryID *uuid.UUID) (*domain.Item, error) {
	return s.assignRef(ctx, actor, id, domain.RefCategory, categoryID, "categoryId", s.items.SetCategory)
}

// AssignLocation points the item at an inventory location; nil clears it.
func (s *Service) AssignLocation(ctx context.Context, actor domain.Actor, id uuid.UUID, locationID *uuid.UUID) (*domain.Item, error) {
	return s.assignRef(ctx, actor, id, domain.RefLocation, locationID, "locationId", s.items.SetLocation)
}

func (s *Service) assignRef(
	ctx context.Context,
	actor domain.Actor,
	id uuid.UUID,
	kind domain.RefKind,
	refID *uuid.UUID,
	field string,
	set func(ctx context.Context, id uuid.UUID, refID *uuid.UUID) error,
) (*domain.Item, error) {
	if _, err := s.loadAccessible(ctx, actor, id); err != nil {
		return nil, err
	}
	if err := s.requireRef(ctx, kind, refID, field); err != nil {
		return nil, err
	}
	if err := set(ctx, id, refID); err != nil {
		return nil, fmt.Errorf("assign %s: %w", kind, err)
	}
	return s.items.GetByID(ctx, id)
}

// UpdateCondition writes the condition sub-resource.
func (s *Service) UpdateCondition(ctx context.Context, actor domain.Actor, input UpdateConditionInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadAccessible(ctx, actor, input.ItemID); err != nil {
		return nil, err
	}

	upd := input.ConditionUpdate
	if upd.Summary != nil {
		trimmed := strings.TrimSpace(*upd.Summary)
		if trimmed == "" {
			upd.Summary, upd.ClearSummary = nil, true
		} else {
			upd.Summary = &trimmed
		}
	}

	updated, err := s.items.UpdateCondition(ctx, input.ItemID, upd)
	if err != nil {
		return nil, fmt.Errorf("update condition: %w", err)
	}
	return updated, nil
}

// GetTags returns the ids of the item's tags.
func (s *Service) GetTags(ctx context.Context, actor domain.Actor, id uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.loadAccessible(ctx, actor, id); err != nil {
		return nil, err
	}
	ids, err := s.items.GetTagIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	return ids, nil
}

// SetTags replaces the item's whole tag set. Every tag must exist.
func (s *Service) SetTags(ctx context.Context, actor domain.Actor, id uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.loadAccessible(ctx, actor, id); err != nil {
		return nil, err
	}

	unique := dedupe(tagIDs)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.refs.CountExisting(txCtx, domain.RefTag, unique)
		if err != nil {
			return fmt.Errorf("check tags: %w", err)
		}
		if n != len(unique) {
			return domain.NewValidationError("tagIds", "unknown tag")
		}
		if err := s.items.ReplaceTags(txCtx, id, unique); err != nil {
			return fmt.Errorf("replace tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.items.GetTagIDs(ctx, id)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
