package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedCopy is the storefront copy kept for an item, usually a generated
// draft the user edited. An item has at most one. Empty fields are nil.
type SavedCopy struct {
	ID                  uuid.UUID
	ItemID              uuid.UUID
	EbayTitle           *string
	EbayDescription     *string
	FacebookTitle       *string
	FacebookDescription *string
	EtsyTitle           *string
	EtsyDescription     *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
