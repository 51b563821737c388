package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefKind identifies a reference-data table.
type RefKind string

const (
	RefCategory RefKind = "category"
	RefLocation RefKind = "inventory_location"
	RefSource   RefKind = "acquisition_source"
	RefPlatform RefKind = "listing_platform"
	RefTag      RefKind = "tag"
)

func (k RefKind) String() string { return string(k) }

func (k RefKind) IsValid() bool {
	switch k {
	case RefCategory, RefLocation, RefSource, RefPlatform, RefTag:
		return true
	}
	return false
}

// Label is the human-readable singular name used in messages.
func (k RefKind) Label() string {
	switch k {
	case RefCategory:
		return "Category"
	case RefLocation:
		return "Location"
	case RefSource:
		return "Source"
	case RefPlatform:
		return "Platform"
	case RefTag:
		return "Tag"
	}
	return string(k)
}

// RefRecord is a name-keyed reference record. Kind-specific fields are
// zero for kinds that do not carry them.
type RefRecord struct {
	Kind      RefKind
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time

	// category
	ParentID *uuid.UUID
	// inventory_location, acquisition_source
	Notes *string
	// acquisition_source
	SourceType SourceType
	// listing_platform
	Slug              string
	DefaultFeePercent *decimal.Decimal
}

// MergeResult reports how many dependent rows a merge repointed, keyed by "table.column".
type MergeResult struct {
	FromID    uuid.UUID
	ToID      uuid.UUID
	Repointed map[string]int64
}
