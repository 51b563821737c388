package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/reference"
)

type referenceService interface {
	List(ctx context.Context, actor domain.Actor, kind domain.RefKind) ([]domain.RefRecord, error)
	Create(ctx context.Context, actor domain.Actor, input reference.CreateInput) (*domain.RefRecord, error)
	Merge(ctx context.Context, actor domain.Actor, input reference.MergeInput) (*domain.MergeResult, error)
}

// referencePaths maps the URL segment of each reference collection to its kind.
var referencePaths = map[string]domain.RefKind{
	"categories":          domain.RefCategory,
	"inventory-locations": domain.RefLocation,
	"acquisition-sources": domain.RefSource,
	"platforms":           domain.RefPlatform,
	"tags":                domain.RefTag,
}

// ReferenceHandler serves the five reference collections.
type ReferenceHandler struct {
	refs referenceService
	log  *slog.Logger
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(refs referenceService, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		refs: refs,
		log:  logger.With("handler", "reference"),
	}
}

// List returns records of kind ordered by name.
// GET /api/{kind}
func (h *ReferenceHandler) List(kind domain.RefKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := h.refs.List(r.Context(), actorFrom(r), kind)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}

		out := make([]refDTO, len(recs))
		for i, rec := range recs {
			out[i] = toRefDTO(rec)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type createRefRequest struct {
	Name              string           `json:"name"`
	ParentID          *uuid.UUID       `json:"parentId"`
	Notes             *string          `json:"notes"`
	SourceType        string           `json:"sourceType"`
	Slug              *string          `json:"slug"`
	DefaultFeePercent *decimal.Decimal `json:"defaultFeePercent"`
}

// Create adds a record of kind.
// POST /api/{kind}
func (h *ReferenceHandler) Create(kind domain.RefKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRefRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondError(w, r, h.log, err)
			return
		}

		rec, err := h.refs.Create(r.Context(), actorFrom(r), reference.CreateInput{
			Kind:              kind,
			Name:              req.Name,
			ParentID:          req.ParentID,
			Notes:             req.Notes,
			SourceType:        domain.SourceType(req.SourceType),
			Slug:              req.Slug,
			DefaultFeePercent: req.DefaultFeePercent,
		})
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRefDTO(*rec))
	}
}

type mergeRequest struct {
	FromID uuid.UUID `json:"fromId"`
	ToID   uuid.UUID `json:"toId"`
}

type mergeResponse struct {
	Success   bool             `json:"success"`
	FromID    string           `json:"fromId"`
	ToID      string           `json:"toId"`
	Repointed map[string]int64 `json:"repointed"`
}

// Merge folds one record into another and deletes the source.
// POST /api/{kind}/merge
func (h *ReferenceHandler) Merge(kind domain.RefKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondError(w, r, h.log, err)
			return
		}

		res, err := h.refs.Merge(r.Context(), actorFrom(r), reference.MergeInput{
			Kind:   kind,
			FromID: req.FromID,
			ToID:   req.ToID,
		})
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, mergeResponse{
			Success:   true,
			FromID:    res.FromID.String(),
			ToID:      res.ToID.String(),
			Repointed: res.Repointed,
		})
	}
}
