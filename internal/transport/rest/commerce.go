package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/item"
)

// Money fields accept either a JSON number or a numeric string.

type purchaseRequest struct {
	PurchasePrice   *decimal.Decimal `json:"purchasePrice"`
	AdditionalCosts *decimal.Decimal `json:"additionalCosts"`
	Source          *string          `json:"source"`
	SourceID        *uuid.UUID       `json:"sourceId"`
	PurchaseDate    *string          `json:"purchaseDate"`
}

// UpsertPurchase creates or replaces the purchase record.
// PUT /api/items/{id}/purchase
func (h *ItemHandler) UpsertPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req purchaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	date, fe := parseDate("purchaseDate", req.PurchaseDate)
	if err := fieldErrors(fe); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.items.UpsertPurchase(r.Context(), actorFrom(r), item.PurchaseInput{
		ItemID:          id,
		PurchasePrice:   req.PurchasePrice,
		AdditionalCosts: req.AdditionalCosts,
		Source:          req.Source,
		SourceID:        req.SourceID,
		PurchaseDate:    date,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPurchaseDTO(p))
}

type listingRequest struct {
	PlatformID    *uuid.UUID       `json:"platformId"`
	Status        string           `json:"status"`
	ListingURL    *string          `json:"listingUrl"`
	ListingPrice  *decimal.Decimal `json:"listingPrice"`
	ShippingPrice *decimal.Decimal `json:"shippingPrice"`
	FeesEstimate  *decimal.Decimal `json:"feesEstimate"`
	DateListed    *string          `json:"dateListed"`
}

// UpsertListing creates or replaces the listing and advances the item to
// listed.
// PUT /api/items/{id}/listing
func (h *ItemHandler) UpsertListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req listingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	date, fe := parseDate("dateListed", req.DateListed)
	if err := fieldErrors(fe); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	l, err := h.items.UpsertListing(r.Context(), actorFrom(r), item.ListingInput{
		ItemID:        id,
		PlatformID:    req.PlatformID,
		Status:        domain.ListingStatus(req.Status),
		ListingURL:    req.ListingURL,
		ListingPrice:  req.ListingPrice,
		ShippingPrice: req.ShippingPrice,
		FeesEstimate:  req.FeesEstimate,
		DateListed:    date,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingDTO(l))
}

type saleRequest struct {
	SalePrice    *decimal.Decimal `json:"salePrice"`
	ShippingCost *decimal.Decimal `json:"shippingCost"`
	PlatformFees *decimal.Decimal `json:"platformFees"`
	OtherFees    *decimal.Decimal `json:"otherFees"`
	SaleDate     *string          `json:"saleDate"`
}

// RecordSale creates or replaces the sale and marks the item sold.
// PUT /api/items/{id}/sale
func (h *ItemHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req saleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	date, fe := parseDate("saleDate", req.SaleDate)
	if err := fieldErrors(fe); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	s, err := h.items.RecordSale(r.Context(), actorFrom(r), item.SaleInput{
		ItemID:       id,
		SalePrice:    req.SalePrice,
		ShippingCost: req.ShippingCost,
		PlatformFees: req.PlatformFees,
		OtherFees:    req.OtherFees,
		SaleDate:     date,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSaleDTO(s))
}
