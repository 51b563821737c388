package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/item"
)

type itemService interface {
	CreateItem(ctx context.Context, actor domain.Actor, input item.CreateItemInput) (*item.ItemDetail, error)
	GetItem(ctx context.Context, actor domain.Actor, id uuid.UUID) (*item.ItemDetail, error)
	ListItems(ctx context.Context, actor domain.Actor, filter domain.ItemFilter) ([]item.InventoryRow, error)
	UpdateItem(ctx context.Context, actor domain.Actor, input item.UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	AssignCategory(ctx context.Context, actor domain.Actor, id uuid.UUID, categoryID *uuid.UUID) (*domain.Item, error)
	AssignLocation(ctx context.Context, actor domain.Actor, id uuid.UUID, locationID *uuid.UUID) (*domain.Item, error)
	UpdateCondition(ctx context.Context, actor domain.Actor, input item.UpdateConditionInput) (*domain.Item, error)
	GetTags(ctx context.Context, actor domain.Actor, id uuid.UUID) ([]uuid.UUID, error)
	SetTags(ctx context.Context, actor domain.Actor, id uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error)
	UpsertPurchase(ctx context.Context, actor domain.Actor, input item.PurchaseInput) (*domain.Purchase, error)
	UpsertListing(ctx context.Context, actor domain.Actor, input item.ListingInput) (*domain.Listing, error)
	RecordSale(ctx context.Context, actor domain.Actor, input item.SaleInput) (*domain.Sale, error)
}

// ItemHandler serves the inventory endpoints.
type ItemHandler struct {
	items          itemService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewItemHandler creates an ItemHandler. maxUploadBytes bounds the whole
// multipart body of a create request.
func NewItemHandler(items itemService, maxUploadBytes int64, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		items:          items,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "item"),
	}
}

// List returns the inventory table.
// GET /api/items?status=&aiStatus=&includeDeleted=&limit=
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := itemFilterFrom(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rows, err := h.items.ListItems(r.Context(), actorFrom(r), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]inventoryRowDTO, len(rows))
	for i, row := range rows {
		out[i] = toInventoryRowDTO(row)
	}
	writeJSON(w, http.StatusOK, out)
}

func itemFilterFrom(r *http.Request) (domain.ItemFilter, error) {
	q := r.URL.Query()
	var filter domain.ItemFilter

	if v := q.Get("status"); v != "" {
		s := domain.ItemStatus(v)
		if !s.IsValid() {
			return filter, badQuery("status", "unknown status")
		}
		filter.Status = &s
	}
	if v := q.Get("aiStatus"); v != "" {
		s := domain.AIStatus(v)
		if !s.IsValid() {
			return filter, badQuery("aiStatus", "unknown status")
		}
		filter.AIStatus = &s
	}
	if v := q.Get("includeDeleted"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, badQuery("includeDeleted", "must be a boolean")
		}
		filter.IncludeDeleted = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, badQuery("limit", "must be a non-negative integer")
		}
		filter.Limit = n
	}
	return filter, nil
}

// Create stores a new item from a multipart form with a title field and
// one or more images parts.
// POST /api/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := h.readCreateForm(w, r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	detail, err := h.items.CreateItem(r.Context(), actorFrom(r), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemDetailDTO(detail))
}

func (h *ItemHandler) readCreateForm(w http.ResponseWriter, r *http.Request) (item.CreateItemInput, error) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return item.CreateItemInput{}, domain.NewValidationError("images", "upload too large")
		}
		return item.CreateItemInput{}, domain.NewValidationError("body", "expected multipart form data")
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	input := item.CreateItemInput{Title: r.FormValue("title")}
	for idx, fh := range r.MultipartForm.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return input, fmt.Errorf("open image %d: %w", idx, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return input, fmt.Errorf("read image %d: %w", idx, err)
		}
		input.Images = append(input.Images, item.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return input, nil
}

// Get returns one item with its sub-resources.
// GET /api/items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	detail, err := h.items.GetItem(r.Context(), actorFrom(r), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDetailDTO(detail))
}

type updateItemRequest struct {
	Title *string `json:"title"`
}

// Update changes editable item fields.
// PATCH /api/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.items.UpdateItem(r.Context(), actorFrom(r), item.UpdateItemInput{ItemID: id, Title: req.Title})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(*it))
}

// Delete soft-deletes an item.
// DELETE /api/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.items.DeleteItem(r.Context(), actorFrom(r), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type assignCategoryRequest struct {
	CategoryID *uuid.UUID `json:"categoryId"`
}

// AssignCategory sets or clears the item's category.
// PUT /api/items/{id}/category
func (h *ItemHandler) AssignCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req assignCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.items.AssignCategory(r.Context(), actorFrom(r), id, req.CategoryID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(*it))
}

type assignLocationRequest struct {
	LocationID *uuid.UUID `json:"locationId"`
}

// AssignLocation sets or clears the item's storage location.
// PUT /api/items/{id}/location
func (h *ItemHandler) AssignLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req assignLocationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.items.AssignLocation(r.Context(), actorFrom(r), id, req.LocationID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(*it))
}

type conditionRequest struct {
	ConditionGrade   optionalString `json:"conditionGrade"`
	IsRestored       *bool          `json:"isRestored"`
	ConditionSummary optionalString `json:"conditionSummary"`
}

func (c conditionRequest) update() domain.ConditionUpdate {
	u := domain.ConditionUpdate{IsRestored: c.IsRestored}
	if c.ConditionGrade.Set {
		if c.ConditionGrade.Value == nil || strings.TrimSpace(*c.ConditionGrade.Value) == "" {
			u.ClearGrade = true
		} else {
			g := domain.ConditionGrade(strings.TrimSpace(*c.ConditionGrade.Value))
			u.Grade = &g
		}
	}
	if c.ConditionSummary.Set {
		if c.ConditionSummary.Value == nil {
			u.ClearSummary = true
		} else {
			u.Summary = c.ConditionSummary.Value
		}
	}
	return u
}

// UpdateCondition patches the condition fields. An explicit null clears a
// field and an absent field is left alone.
// PUT /api/items/{id}/condition
func (h *ItemHandler) UpdateCondition(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req conditionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	it, err := h.items.UpdateCondition(r.Context(), actorFrom(r), item.UpdateConditionInput{
		ItemID:          id,
		ConditionUpdate: req.update(),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(*it))
}

type tagsRequest struct {
	TagIDs []uuid.UUID `json:"tagIds"`
}

type tagsResponse struct {
	TagIDs []string `json:"tagIds"`
}

// GetTags lists the tag ids attached to an item.
// GET /api/items/{id}/tags
func (h *ItemHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ids, err := h.items.GetTags(r.Context(), actorFrom(r), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, tagsResponse{TagIDs: uuidStrings(ids)})
}

// SetTags replaces the tag set of an item.
// PUT /api/items/{id}/tags
func (h *ItemHandler) SetTags(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req tagsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ids, err := h.items.SetTags(r.Context(), actorFrom(r), id, req.TagIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, tagsResponse{TagIDs: uuidStrings(ids)})
}
