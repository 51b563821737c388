package copywriter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/metrics"
	"github.com/heartmarshall/resale-backend/internal/provider"
	"github.com/heartmarshall/resale-backend/internal/service/aiusage"
)

// ItemCopy writes storefront copy from the item's attributes and photo.
func (s *Service) ItemCopy(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*provider.ListingCopy, error) {
	it, err := s.loadAccessible(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}
	req, err := s.request(ctx, it)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, actor, domain.UsageItemCopy, it.ID, nil, req)
}

// ListingCopy writes storefront copy with the listing's platform and price
// as extra context.
func (s *Service) ListingCopy(ctx context.Context, actor domain.Actor, listingID uuid.UUID) (*provider.ListingCopy, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	it, err := s.loadAccessible(ctx, actor, l.ItemID)
	if err != nil {
		return nil, err
	}

	req, err := s.request(ctx, it)
	if err != nil {
		return nil, err
	}
	req.ListingPrice = l.ListingPrice
	if l.PlatformID != nil {
		p, err := s.refs.Get(ctx, domain.RefPlatform, *l.PlatformID)
		switch {
		case err == nil:
			req.Platform = &p.Name
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get platform: %w", err)
		}
	}

	return s.generate(ctx, actor, domain.UsageListingCopy, it.ID, &l.ID, req)
}

func (s *Service) request(ctx context.Context, it *domain.Item) (provider.CopyRequest, error) {
	images, err := s.items.ListImages(ctx, it.ID)
	if err != nil {
		return provider.CopyRequest{}, fmt.Errorf("list images: %w", err)
	}

	req := provider.CopyRequest{
		Title:            it.Title,
		Category:         it.Category,
		BrandOrMaker:     it.BrandOrMaker,
		StyleOrEra:       it.StyleOrEra,
		Material:         it.Material,
		Color:            it.Color,
		DimensionsGuess:  it.DimensionsGuess,
		ConditionSummary: it.ConditionSummary,
		IsRestored:       it.IsRestored,
	}
	if it.ConditionGrade != nil {
		g := it.ConditionGrade.String()
		req.ConditionGrade = &g
	}
	if img := domain.PrimaryImage(images); img != nil {
		req.ImageURL = &img.URL
	}
	return req, nil
}

func (s *Service) generate(
	ctx context.Context,
	actor domain.Actor,
	endpoint domain.UsageEndpoint,
	itemID uuid.UUID,
	listingID *uuid.UUID,
	req provider.CopyRequest,
) (*provider.ListingCopy, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	out, tokens, err := s.model.WriteCopy(callCtx, req)
	metrics.RecordAICall(endpoint.String(), metrics.Outcome(err), time.Since(start).Seconds())

	if tokens != nil {
		s.usage.Record(ctx, aiusage.Entry{
			UserID:    actor.UserID,
			ItemID:    &itemID,
			ListingID: listingID,
			Endpoint:  endpoint,
			Model:     s.model.Model(),
			Tokens:    tokens,
		})
	}

	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return nil, upstream
		}
		return nil, domain.NewUpstreamError("copywriter", err)
	}

	s.log.InfoContext(ctx, "copy generated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("item_id", itemID.String()),
		slog.String("endpoint", endpoint.String()),
	)
	return &out, nil
}
