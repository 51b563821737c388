package domain

// ItemStatus is the coarse workflow stage of an item.
type ItemStatus string

const (
	ItemStatusNew        ItemStatus = "new"
	ItemStatusIdentified ItemStatus = "identified"
	ItemStatusListed     ItemStatus = "listed"
	ItemStatusSold       ItemStatus = "sold"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusNew, ItemStatusIdentified, ItemStatusListed, ItemStatusSold:
		return true
	}
	return false
}

// AIStatus is the processing state of the identification call.
type AIStatus string

const (
	AIStatusIdle     AIStatus = "idle"
	AIStatusPending  AIStatus = "pending"
	AIStatusComplete AIStatus = "complete"
	AIStatusError    AIStatus = "error"
)

func (s AIStatus) String() string { return string(s) }

func (s AIStatus) IsValid() bool {
	switch s {
	case AIStatusIdle, AIStatusPending, AIStatusComplete, AIStatusError:
		return true
	}
	return false
}

// ConditionGrade is the user-assigned physical condition of an item.
type ConditionGrade string

const (
	ConditionMint      ConditionGrade = "mint"
	ConditionExcellent ConditionGrade = "excellent"
	ConditionVeryGood  ConditionGrade = "very_good"
	ConditionGood      ConditionGrade = "good"
	ConditionFair      ConditionGrade = "fair"
	ConditionPoor      ConditionGrade = "poor"
)

func (g ConditionGrade) String() string { return string(g) }

func (g ConditionGrade) IsValid() bool {
	switch g {
	case ConditionMint, ConditionExcellent, ConditionVeryGood,
		ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// ListingStatus is the sub-status of a listing on a storefront.
type ListingStatus string

const (
	ListingStatusDraft ListingStatus = "draft"
	ListingStatusLive  ListingStatus = "live"
	ListingStatusEnded ListingStatus = "ended"
)

func (s ListingStatus) String() string { return string(s) }

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusLive, ListingStatusEnded:
		return true
	}
	return false
}

// SourceType classifies where an item was acquired.
type SourceType string

const (
	SourceThriftStore       SourceType = "thrift_store"
	SourceEstateSale        SourceType = "estate_sale"
	SourceFleaMarket        SourceType = "flea_market"
	SourceOnlineMarketplace SourceType = "online_marketplace"
	SourceAuctionHouse      SourceType = "auction_house"
	SourceOther             SourceType = "other"
)

func (s SourceType) String() string { return string(s) }

func (s SourceType) IsValid() bool {
	switch s {
	case SourceThriftStore, SourceEstateSale, SourceFleaMarket,
		SourceOnlineMarketplace, SourceAuctionHouse, SourceOther:
		return true
	}
	return false
}

// UsageEndpoint names the operation that triggered an AI call.
type UsageEndpoint string

const (
	UsageAnalyze     UsageEndpoint = "analyze"
	UsageItemCopy    UsageEndpoint = "item_copy"
	UsageListingCopy UsageEndpoint = "listing_copy"
	UsageImageEdit   UsageEndpoint = "image_edit"
)

func (e UsageEndpoint) String() string { return string(e) }

func (e UsageEndpoint) IsValid() bool {
	switch e {
	case UsageAnalyze, UsageItemCopy, UsageListingCopy, UsageImageEdit:
		return true
	}
	return false
}
