package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/pkg/ctxutil"
)

// defaultPurgeAge is used when the request names no age.
const defaultPurgeAge = 30 * 24 * time.Hour

type purgeService interface {
	PurgeDeleted(ctx context.Context, actor domain.Actor, olderThan time.Duration) (int64, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	items purgeService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(items purgeService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		items: items,
		log:   logger.With("handler", "admin"),
	}
}

type purgeResponse struct {
	Purged int64 `json:"purged"`
}

// Purge hard-deletes items soft-deleted more than olderThanDays ago.
// POST /api/admin/purge?olderThanDays=30
func (h *AdminHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	age := defaultPurgeAge
	if v := r.URL.Query().Get("olderThanDays"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			respondError(w, r, h.log, badQuery("olderThanDays", "must be a positive integer"))
			return
		}
		age = time.Duration(days) * 24 * time.Hour
	}

	n, err := h.items.PurgeDeleted(r.Context(), actorFrom(r), age)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, purgeResponse{Purged: n})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
