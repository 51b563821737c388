// Package reporting aggregates an owner's items into profit reports and
// CSV exports.
package reporting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/finance"
)

type reportRepo interface {
	Entries(ctx context.Context, ownerID uuid.UUID, rng domain.DateRange) ([]domain.ReportEntry, error)
}

// Row is one item of a report with its derived money values.
type Row struct {
	ItemID       uuid.UUID
	Title        string
	Status       domain.ItemStatus
	Category     string
	Platform     string
	CostBasis    *decimal.Decimal
	ListingPrice *decimal.Decimal
	DateListed   *time.Time
	SalePrice    *decimal.Decimal
	Profit       *decimal.Decimal
	SaleDate     *time.Time
	CreatedAt    time.Time
}

// Totals aggregates unrounded row values.
type Totals struct {
	TotalCostBasis      decimal.Decimal
	TotalRealizedProfit decimal.Decimal
	ListedUnsold        int
	ItemCount           int
}

// Report is the result of a reporting query.
type Report struct {
	Range  domain.DateRange
	Rows   []Row
	Totals Totals
}

// Service builds reports.
type Service struct {
	repo reportRepo
	log  *slog.Logger
}

// NewService creates a new reporting service.
func NewService(log *slog.Logger, repo reportRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "reporting"),
	}
}

// Report returns the actor's non-deleted items created in rng, with totals.
func (s *Service) Report(ctx context.Context, actor domain.Actor, rng domain.DateRange) (*Report, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	if rng.From != nil && rng.To != nil && rng.From.After(*rng.To) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}

	entries, err := s.repo.Entries(ctx, actor.UserID, rng)
	if err != nil {
		return nil, fmt.Errorf("report entries: %w", err)
	}

	rep := &Report{Range: rng, Rows: make([]Row, len(entries))}
	for i, e := range entries {
		row := buildRow(e)
		rep.Rows[i] = row

		rep.Totals.ItemCount++
		if row.CostBasis != nil {
			rep.Totals.TotalCostBasis = rep.Totals.TotalCostBasis.Add(*row.CostBasis)
		}
		if row.Status == domain.ItemStatusSold && row.Profit != nil {
			rep.Totals.TotalRealizedProfit = rep.Totals.TotalRealizedProfit.Add(*row.Profit)
		}
		if row.Status == domain.ItemStatusListed {
			rep.Totals.ListedUnsold++
		}
	}
	return rep, nil
}

func buildRow(e domain.ReportEntry) Row {
	fin := finance.Derive(e.Purchase, e.Listing, e.Sale)
	row := Row{
		ItemID:    e.ItemID,
		Title:     e.Title,
		Status:    e.Status,
		CostBasis: fin.CostBasis,
		Profit:    fin.RealizedProfit,
		CreatedAt: e.CreatedAt,
	}
	if e.CategoryName != nil {
		row.Category = *e.CategoryName
	}
	if e.PlatformName != nil {
		row.Platform = *e.PlatformName
	}
	if e.Listing != nil {
		row.ListingPrice = e.Listing.ListingPrice
		row.DateListed = e.Listing.DateListed
	}
	if e.Sale != nil {
		row.SalePrice = e.Sale.SalePrice
		row.SaleDate = e.Sale.SaleDate
	}
	return row
}
