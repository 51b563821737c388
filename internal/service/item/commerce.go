package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// UpsertPurchase creates or replaces the item's purchase record.
func (s *Service) UpsertPurchase(ctx context.Context, actor domain.Actor, input PurchaseInput) (*domain.Purchase, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadAccessible(ctx, actor, input.ItemID); err != nil {
		return nil, err
	}
	if err := s.requireRef(ctx, domain.RefSource, input.SourceID, "sourceId"); err != nil {
		return nil, err
	}

	saved, err := s.purchases.Upsert(ctx, &domain.Purchase{
		ItemID:          input.ItemID,
		PurchasePrice:   input.PurchasePrice,
		AdditionalCosts: input.AdditionalCosts,
		Source:          input.Source,
		SourceID:        input.SourceID,
		PurchaseDate:    input.PurchaseDate,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert purchase: %w", err)
	}
	return saved, nil
}

// UpsertListing creates or replaces the item's listing. A live listing moves
// the item to listed in the same transaction.
func (s *Service) UpsertListing(ctx context.Context, actor domain.Actor, input ListingInput) (*domain.Listing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadAccessible(ctx, actor, input.ItemID); err != nil {
		return nil, err
	}
	if err := s.requireRef(ctx, domain.RefPlatform, input.PlatformID, "platformId"); err != nil {
		return nil, err
	}

	var saved *domain.Listing
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.listings.Upsert(txCtx, &domain.Listing{
			ItemID:        input.ItemID,
			PlatformID:    input.PlatformID,
			Status:        input.Status,
			ListingURL:    input.ListingURL,
			ListingPrice:  input.ListingPrice,
			ShippingPrice: input.ShippingPrice,
			FeesEstimate:  input.FeesEstimate,
			DateListed:    input.DateListed,
		})
		if err != nil {
			return fmt.Errorf("upsert listing: %w", err)
		}
		if input.Status != domain.ListingStatusLive {
			return nil
		}
		return s.advance(txCtx, input.ItemID, domain.EventListedLive)
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// RecordSale creates or replaces the item's sale and moves it to sold in the
// same transaction.
func (s *Service) RecordSale(ctx context.Context, actor domain.Actor, input SaleInput) (*domain.Sale, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadAccessible(ctx, actor, input.ItemID); err != nil {
		return nil, err
	}

	var saved *domain.Sale
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.sales.Upsert(txCtx, &domain.Sale{
			ItemID:       input.ItemID,
			SalePrice:    input.SalePrice,
			ShippingCost: input.ShippingCost,
			PlatformFees: input.PlatformFees,
			OtherFees:    input.OtherFees,
			SaleDate:     input.SaleDate,
		})
		if err != nil {
			return fmt.Errorf("upsert sale: %w", err)
		}
		return s.advance(txCtx, input.ItemID, domain.EventSold)
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// advance applies a lifecycle event to the item's current status.
func (s *Service) advance(ctx context.Context, itemID uuid.UUID, event domain.LifecycleEvent) error {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("reload item: %w", err)
	}
	next := domain.Transition(it.Status, event)
	if next == it.Status {
		return nil
	}
	if err := s.items.SetStatus(ctx, itemID, next); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	s.log.InfoContext(ctx, "item status changed",
		slog.String("item_id", it.ID.String()),
		slog.String("from", it.Status.String()),
		slog.String("to", next.String()),
		slog.String("event", event.String()),
	)
	return nil
}
