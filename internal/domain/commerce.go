package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records how an item was acquired. At most one per item.
type Purchase struct {
	ID              uuid.UUID
	ItemID          uuid.UUID
	PurchasePrice   *decimal.Decimal
	AdditionalCosts *decimal.Decimal
	Source          *string
	SourceID        *uuid.UUID
	PurchaseDate    *time.Time
	CreatedAt       time.Time
}

// Listing records where and how an item is offered for sale.
type Listing struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	PlatformID    *uuid.UUID
	Status        ListingStatus
	ListingURL    *string
	ListingPrice  *decimal.Decimal
	ShippingPrice *decimal.Decimal
	FeesEstimate  *decimal.Decimal
	DateListed    *time.Time
	CreatedAt     time.Time
}

// Sale records the final transaction economics of an item.
type Sale struct {
	ID           uuid.UUID
	ItemID       uuid.UUID
	SalePrice    *decimal.Decimal
	ShippingCost *decimal.Decimal
	PlatformFees *decimal.Decimal
	OtherFees    *decimal.Decimal
	SaleDate     *time.Time
	CreatedAt    time.Time
}

// DateLayout is the wire and CSV format for calendar dates.
const DateLayout = "2006-01-02"
