package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the central inventory record.
type Item struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Title    string
	Status   ItemStatus
	AIStatus AIStatus
	AIError  *string

	// Descriptive attributes, nil until identified or edited.
	Category         *string
	BrandOrMaker     *string
	StyleOrEra       *string
	Material         *string
	Color            *string
	DimensionsGuess  *string
	ConditionSummary *string
	ConditionGrade   *ConditionGrade
	IsRestored       bool

	// Valuation attributes in USD.
	EstimatedLowPrice  *decimal.Decimal
	EstimatedHighPrice *decimal.Decimal
	SuggestedListPrice *decimal.Decimal

	DebugNotes *string

	CategoryID *uuid.UUID
	LocationID *uuid.UUID

	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemImage is a photo attached to an item. The earliest one is primary.
type ItemImage struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	URL        string
	EditedURL  *string
	EditPrompt *string
	EditedAt   *time.Time
	CreatedAt  time.Time
}

// Identification is the structured result of an AI vision call.
type Identification struct {
	Category           string
	BrandOrMaker       string
	StyleOrEra         string
	Material           string
	Color              string
	DimensionsGuess    string
	ConditionSummary   string
	EstimatedLowPrice  decimal.Decimal
	EstimatedHighPrice decimal.Decimal
	SuggestedListPrice decimal.Decimal
	DebugNotes         string
}

// ItemUpdateParams holds optional fields for a partial item update.
// A nil field is left unchanged.
type ItemUpdateParams struct {
	Title *string
}

// ConditionUpdate holds the condition sub-resource. Nil fields are left unchanged;
// ClearGrade and ClearSummary write NULL.
type ConditionUpdate struct {
	Grade        *ConditionGrade
	ClearGrade   bool
	IsRestored   *bool
	Summary      *string
	ClearSummary bool
}

// ItemFilter narrows item listings.
type ItemFilter struct {
	Status         *ItemStatus
	AIStatus       *AIStatus
	IncludeDeleted bool
	Limit          int
}

// PrimaryImage returns the first image or nil.
func PrimaryImage(images []ItemImage) *ItemImage {
	if len(images) == 0 {
		return nil
	}
	return &images[0]
}
