package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/copywriter"
)

type savedCopyDTO struct {
	ID                  string    `json:"id"`
	ItemID              string    `json:"itemId"`
	EbayTitle           *string   `json:"ebayTitle"`
	EbayDescription     *string   `json:"ebayDescription"`
	FacebookTitle       *string   `json:"facebookTitle"`
	FacebookDescription *string   `json:"facebookDescription"`
	EtsyTitle           *string   `json:"etsyTitle"`
	EtsyDescription     *string   `json:"etsyDescription"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toSavedCopyDTO(c *domain.SavedCopy) *savedCopyDTO {
	if c == nil {
		return nil
	}
	return &savedCopyDTO{
		ID:                  c.ID.String(),
		ItemID:              c.ItemID.String(),
		EbayTitle:           c.EbayTitle,
		EbayDescription:     c.EbayDescription,
		FacebookTitle:       c.FacebookTitle,
		FacebookDescription: c.FacebookDescription,
		EtsyTitle:           c.EtsyTitle,
		EtsyDescription:     c.EtsyDescription,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// savedCopyResponse wraps the copy so "none saved yet" is {"data":null}.
type savedCopyResponse struct {
	Data *savedCopyDTO `json:"data"`
}

type saveCopyRequest struct {
	EbayTitle           *string `json:"ebayTitle"`
	EbayDescription     *string `json:"ebayDescription"`
	FacebookTitle       *string `json:"facebookTitle"`
	FacebookDescription *string `json:"facebookDescription"`
	EtsyTitle           *string `json:"etsyTitle"`
	EtsyDescription     *string `json:"etsyDescription"`
}

// GetSavedCopy returns the copy saved for an item.
// GET /api/items/{id}/listing-copy
func (h *AIHandler) GetSavedCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.copy.GetCopy(r.Context(), actorFrom(r), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, savedCopyResponse{Data: toSavedCopyDTO(c)})
}

// SaveCopy creates or replaces the copy saved for an item.
// POST /api/items/{id}/listing-copy
func (h *AIHandler) SaveCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req saveCopyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.copy.SaveCopy(r.Context(), actorFrom(r), copywriter.SaveCopyInput{
		ItemID:              id,
		EbayTitle:           req.EbayTitle,
		EbayDescription:     req.EbayDescription,
		FacebookTitle:       req.FacebookTitle,
		FacebookDescription: req.FacebookDescription,
		EtsyTitle:           req.EtsyTitle,
		EtsyDescription:     req.EtsyDescription,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, savedCopyResponse{Data: toSavedCopyDTO(c)})
}
