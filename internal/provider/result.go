// Package provider holds the request and result shapes shared by the AI
// adapters and the services that call them.
package provider

import "github.com/shopspring/decimal"

// CopyRequest is the item context sent to the copywriting model. It never
// carries purchase or cost data.
type CopyRequest struct {
	Title            string
	Category         *string
	BrandOrMaker     *string
	StyleOrEra       *string
	Material         *string
	Color            *string
	DimensionsGuess  *string
	ConditionGrade   *string
	ConditionSummary *string
	IsRestored       bool
	ImageURL         *string

	// Listing context, set only for listing copy.
	Platform     *string
	ListingPrice *decimal.Decimal
}

// ListingCopy is marketplace-ready copy for three storefronts.
type ListingCopy struct {
	EbayTitle           string `json:"ebayTitle"`
	EbayDescription     string `json:"ebayDescription"`
	FacebookTitle       string `json:"facebookTitle"`
	FacebookDescription string `json:"facebookDescription"`
	EtsyTitle           string `json:"etsyTitle"`
	EtsyDescription     string `json:"etsyDescription"`
}

// EditResult is an edited image returned by an image-editing service.
type EditResult struct {
	Data        []byte
	ContentType string
}
