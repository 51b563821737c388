package item

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/finance"
)

// ItemDetail is an item with every sub-resource and its derived financials.
type ItemDetail struct {
	Item       domain.Item
	Images     []domain.ItemImage
	TagIDs     []uuid.UUID
	Purchase   *domain.Purchase
	Listing    *domain.Listing
	Sale       *domain.Sale
	Financials finance.Financials
}

// InventoryRow is one line of the inventory table.
type InventoryRow struct {
	Item         domain.Item
	PrimaryImage *domain.ItemImage
	Purchase     *domain.Purchase
	Listing      *domain.Listing
	Sale         *domain.Sale
	Financials   finance.Financials
}

// ImportResult reports a tolerant multi-image import.
type ImportResult struct {
	Item         *domain.Item
	Uploaded     int
	Failed       int
	UploadErrors []string
}
