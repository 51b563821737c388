package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/resale-backend/internal/service/ingest"
	"github.com/heartmarshall/resale-backend/internal/service/item"
)

// MaxIngestBody bounds base64 ingest payloads: five images with encoding
// overhead. The router applies it.
const MaxIngestBody = 64 << 20

type ingestService interface {
	Enabled() bool
	VerifyKey(header string) bool
	Ingest(ctx context.Context, req ingest.Request) (*item.ImportResult, error)
}

// IngestHandler serves the machine-to-machine import endpoint. It is
// authenticated by a shared key, not by the session middleware.
type IngestHandler struct {
	ingest ingestService
	log    *slog.Logger
}

// NewIngestHandler creates an IngestHandler.
func NewIngestHandler(svc ingestService, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{
		ingest: svc,
		log:    logger.With("handler", "ingest"),
	}
}

type ingestImageRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type ingestRequest struct {
	Title      string               `json:"title"`
	Images     []ingestImageRequest `json:"images"`
	OwnerEmail string               `json:"owner_email"`
}

type ingestResponse struct {
	Success        bool     `json:"success"`
	ItemID         string   `json:"item_id,omitempty"`
	ImagesUploaded int      `json:"images_uploaded"`
	ImagesFailed   int      `json:"images_failed"`
	UploadErrors   []string `json:"upload_errors"`
	Error          string   `json:"error,omitempty"`
}

// Ingest imports an item with base64 images.
// POST /api/items/ingest
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	if !h.ingest.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "ingest is not configured")
		return
	}
	if !h.ingest.VerifyKey(r.Header.Get("Authorization")) {
		writeError(w, http.StatusUnauthorized, "invalid ingest key")
		return
	}

	var req ingestRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	res, err := h.ingest.Ingest(r.Context(), req.toService())
	if errors.Is(err, item.ErrNoImagesStored) && res != nil {
		writeJSON(w, http.StatusInternalServerError, ingestResponse{
			Success:      false,
			ImagesFailed: res.Failed,
			UploadErrors: nonNil(res.UploadErrors),
			Error:        "no images could be stored",
		})
		return
	}
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, ingestResponse{
		Success:        true,
		ItemID:         res.Item.ID.String(),
		ImagesUploaded: res.Uploaded,
		ImagesFailed:   res.Failed,
		UploadErrors:   nonNil(res.UploadErrors),
	})
}

func (req ingestRequest) toService() ingest.Request {
	out := ingest.Request{
		Title:      req.Title,
		Images:     make([]ingest.ImageInput, len(req.Images)),
		OwnerEmail: req.OwnerEmail,
	}
	for i, img := range req.Images {
		out.Images[i] = ingest.ImageInput{Filename: img.Filename, Data: img.Data, MimeType: img.MimeType}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
