package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/provider"
	"github.com/heartmarshall/resale-backend/internal/service/copywriter"
	"github.com/heartmarshall/resale-backend/internal/service/identify"
)

type identifyService interface {
	Identify(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*domain.Item, error)
	BatchIdentify(ctx context.Context, actor domain.Actor, itemIDs []uuid.UUID) (*identify.BatchSummary, error)
}

type copyService interface {
	ItemCopy(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*provider.ListingCopy, error)
	ListingCopy(ctx context.Context, actor domain.Actor, listingID uuid.UUID) (*provider.ListingCopy, error)
	GetCopy(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*domain.SavedCopy, error)
	SaveCopy(ctx context.Context, actor domain.Actor, input copywriter.SaveCopyInput) (*domain.SavedCopy, error)
}

type imageEditService interface {
	EditImage(ctx context.Context, actor domain.Actor, imageID uuid.UUID, prompt *string) (*domain.ItemImage, error)
}

// AIHandler serves the endpoints that call the AI collaborators.
type AIHandler struct {
	identify identifyService
	copy     copyService
	edit     imageEditService
	log      *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(identifier identifyService, writer copyService, editor imageEditService, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		identify: identifier,
		copy:     writer,
		edit:     editor,
		log:      logger.With("handler", "ai"),
	}
}

// Analyze runs identification on one item.
// POST /api/items/{id}/analyze
func (h *AIHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.identify.Identify(r.Context(), actorFrom(r), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(*it))
}

type batchAnalyzeRequest struct {
	ItemIDs []uuid.UUID `json:"itemIds"`
}

// BatchAnalyze identifies several items. Per-item failures are reported in
// the body and never fail the request.
// POST /api/items/batch-analyze
func (h *AIHandler) BatchAnalyze(w http.ResponseWriter, r *http.Request) {
	var req batchAnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	summary, err := h.identify.BatchIdentify(r.Context(), actorFrom(r), req.ItemIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchSummaryDTO(summary))
}

// ItemCopy generates marketplace copy for an item.
// POST /api/items/{id}/copy
func (h *AIHandler) ItemCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.copy.ItemCopy(r.Context(), actorFrom(r), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ListingCopy generates marketplace copy for the item behind a listing.
// POST /api/listings/{id}/copy
func (h *AIHandler) ListingCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.copy.ListingCopy(r.Context(), actorFrom(r), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type editImageRequest struct {
	Prompt *string `json:"prompt"`
}

// EditImage runs the image editor on a stored image.
// POST /api/images/{imageId}/edit
func (h *AIHandler) EditImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "imageId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req editImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	img, err := h.edit.EditImage(r.Context(), actorFrom(r), id, req.Prompt)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toImageDTO(*img))
}
