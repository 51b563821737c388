package item

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// ImageUpload is one raw image supplied at creation time.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateItemInput holds the parameters for creating an item.
type CreateItemInput struct {
	Title  string
	Images []ImageUpload
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(i.Title)...)

	switch {
	case len(i.Images) == 0:
		errs = append(errs, domain.FieldError{Field: "images", Message: "at least one image is required"})
	case len(i.Images) > MaxImagesPerItem:
		errs = append(errs, domain.FieldError{Field: "images", Message: fmt.Sprintf("max %d images", MaxImagesPerItem)})
	}
	for idx, img := range i.Images {
		if len(img.Data) == 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d]", idx), Message: "empty image"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for a partial item update.
type UpdateItemInput struct {
	ItemID uuid.UUID
	Title  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Title == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	} else {
		errs = append(errs, validateTitle(*i.Title)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateConditionInput holds the condition sub-resource.
type UpdateConditionInput struct {
	ItemID uuid.UUID
	domain.ConditionUpdate
}

// Validate checks all fields and collects all errors.
func (i UpdateConditionInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Grade != nil && !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "conditionGrade", Message: "invalid value"})
	}
	if i.Summary != nil && len(*i.Summary) > 2000 {
		errs = append(errs, domain.FieldError{Field: "conditionSummary", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PurchaseInput holds the purchase record for an item.
type PurchaseInput struct {
	ItemID          uuid.UUID
	PurchasePrice   *decimal.Decimal
	AdditionalCosts *decimal.Decimal
	Source          *string
	SourceID        *uuid.UUID
	PurchaseDate    *time.Time
}

// Validate checks all fields and collects all errors.
func (i PurchaseInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	errs = append(errs, validateMoney("purchasePrice", i.PurchasePrice)...)
	errs = append(errs, validateMoney("additionalCosts", i.AdditionalCosts)...)
	if i.Source != nil && len(*i.Source) > 200 {
		errs = append(errs, domain.FieldError{Field: "source", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListingInput holds the listing record for an item.
type ListingInput struct {
	ItemID        uuid.UUID
	PlatformID    *uuid.UUID
	Status        domain.ListingStatus
	ListingURL    *string
	ListingPrice  *decimal.Decimal
	ShippingPrice *decimal.Decimal
	FeesEstimate  *decimal.Decimal
	DateListed    *time.Time
}

// Validate checks all fields and collects all errors.
func (i ListingInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	} else if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of draft, live, ended"})
	}
	if i.ListingURL != nil && !isHTTPURL(*i.ListingURL) {
		errs = append(errs, domain.FieldError{Field: "listingUrl", Message: "must be an absolute http(s) URL"})
	}
	errs = append(errs, validateMoney("listingPrice", i.ListingPrice)...)
	errs = append(errs, validateMoney("shippingPrice", i.ShippingPrice)...)
	errs = append(errs, validateMoney("feesEstimate", i.FeesEstimate)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaleInput holds the sale record for an item.
type SaleInput struct {
	ItemID       uuid.UUID
	SalePrice    *decimal.Decimal
	ShippingCost *decimal.Decimal
	PlatformFees *decimal.Decimal
	OtherFees    *decimal.Decimal
	SaleDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i SaleInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	errs = append(errs, validateMoney("salePrice", i.SalePrice)...)
	errs = append(errs, validateMoney("shippingCost", i.ShippingCost)...)
	errs = append(errs, validateMoney("platformFees", i.PlatformFees)...)
	errs = append(errs, validateMoney("otherFees", i.OtherFees)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(t) > MaxTitleLength {
		return []domain.FieldError{{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)}}
	}
	return nil
}

func validateMoney(field string, v *decimal.Decimal) []domain.FieldError {
	if v != nil && v.IsNegative() {
		return []domain.FieldError{{Field: field, Message: "must be non-negative"}}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
