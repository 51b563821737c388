package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportEntry is one item joined with its commerce records for reporting.
// Purchase, Listing and Sale are nil when the item has none.
type ReportEntry struct {
	ItemID       uuid.UUID
	Title        string
	Status       ItemStatus
	CategoryName *string
	PlatformName *string
	Purchase     *Purchase
	Listing      *Listing
	Sale         *Sale
	CreatedAt    time.Time
}

// UsageSummary is the actor's AI usage over a date range.
type UsageSummary struct {
	Records      []AIUsage
	TotalCostUSD decimal.Decimal
}
