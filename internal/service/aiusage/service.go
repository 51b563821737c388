// Package aiusage records and reports the cost of AI collaborator calls.
package aiusage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/metrics"
)

type usageRepo interface {
	Insert(ctx context.Context, u domain.AIUsage) (*domain.AIUsage, error)
	ListByUser(ctx context.Context, userID uuid.UUID, rng domain.DateRange) ([]domain.AIUsage, error)
}

// Entry describes one AI call to account for. Exactly one of Tokens and
// FlatCost prices the call.
type Entry struct {
	UserID    uuid.UUID
	ItemID    *uuid.UUID
	ListingID *uuid.UUID
	Endpoint  domain.UsageEndpoint
	Model     string
	Tokens    *domain.TokenUsage
	FlatCost  *decimal.Decimal
}

// Service appends usage records and lists them per user.
type Service struct {
	repo  usageRepo
	rates domain.TokenRates
	log   *slog.Logger
}

// NewService creates a new usage service.
func NewService(log *slog.Logger, repo usageRepo, rates domain.TokenRates) *Service {
	return &Service{
		repo:  repo,
		rates: rates,
		log:   log.With("service", "aiusage"),
	}
}

// Record writes a usage entry. It is best-effort: failures are logged and
// never returned. Token-priced entries without tokens are skipped.
func (s *Service) Record(ctx context.Context, e Entry) {
	u := domain.AIUsage{
		UserID:    e.UserID,
		ItemID:    e.ItemID,
		ListingID: e.ListingID,
		Endpoint:  e.Endpoint,
		Model:     e.Model,
	}
	switch {
	case e.Tokens != nil:
		u.PromptTokens = &e.Tokens.PromptTokens
		u.CompletionTokens = &e.Tokens.CompletionTokens
		u.TotalCostUSD = s.rates.Cost(*e.Tokens)
	case e.FlatCost != nil:
		u.TotalCostUSD = e.FlatCost.Round(domain.CostPrecision)
	default:
		return
	}

	if _, err := s.repo.Insert(context.WithoutCancel(ctx), u); err != nil {
		s.log.ErrorContext(ctx, "record ai usage",
			slog.String("user_id", e.UserID.String()),
			slog.String("endpoint", e.Endpoint.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	cost, _ := u.TotalCostUSD.Float64()
	metrics.RecordAICost(e.Endpoint.String(), cost)
}

// List returns the actor's usage records in the range, newest first, with
// the exact total cost.
func (s *Service) List(ctx context.Context, actor domain.Actor, rng domain.DateRange) (*domain.UsageSummary, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	records, err := s.repo.ListByUser(ctx, actor.UserID, rng)
	if err != nil {
		return nil, fmt.Errorf("list ai usage: %w", err)
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.TotalCostUSD)
	}
	return &domain.UsageSummary{Records: records, TotalCostUSD: total}, nil
}
