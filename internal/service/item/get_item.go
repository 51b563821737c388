package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/finance"
)

// GetItem returns the item with images, tags, commerce records and financials.
func (s *Service) GetItem(ctx context.Context, actor domain.Actor, id uuid.UUID) (*ItemDetail, error) {
	it, err := s.loadAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	images, err := s.items.ListImages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	tagIDs, err := s.items.GetTagIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}

	purchase, err := optional(s.purchases.GetByItem(ctx, id))
	if err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	listing, err := optional(s.listings.GetByItem(ctx, id))
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	sale, err := optional(s.sales.GetByItem(ctx, id))
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}

	return &ItemDetail{
		Item:       *it,
		Images:     images,
		TagIDs:     tagIDs,
		Purchase:   purchase,
		Listing:    listing,
		Sale:       sale,
		Financials: finance.Derive(purchase, listing, sale),
	}, nil
}

// ListItems returns the actor's inventory table, newest first.
func (s *Service) ListItems(ctx context.Context, actor domain.Actor, filter domain.ItemFilter) ([]InventoryRow, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}

	items, err := s.items.List(ctx, actor.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	images, err := s.items.PrimaryImages(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("primary images: %w", err)
	}
	purchases, err := s.purchases.GetByItemIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batch purchases: %w", err)
	}
	listings, err := s.listings.GetByItemIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batch listings: %w", err)
	}
	sales, err := s.sales.GetByItemIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batch sales: %w", err)
	}

	rows := make([]InventoryRow, len(items))
	for i, it := range items {
		row := InventoryRow{Item: it}
		if img, ok := images[it.ID]; ok {
			row.PrimaryImage = &img
		}
		if p, ok := purchases[it.ID]; ok {
			row.Purchase = &p
		}
		if l, ok := listings[it.ID]; ok {
			row.Listing = &l
		}
		if sl, ok := sales[it.ID]; ok {
			row.Sale = &sl
		}
		row.Financials = finance.Derive(row.Purchase, row.Listing, row.Sale)
		rows[i] = row
	}
	return rows, nil
}

// optional turns a not-found lookup into a nil record.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
