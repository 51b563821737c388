package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/pkg/ctxutil"
)

// maxJSONBody bounds JSON request bodies that carry no image data.
const maxJSONBody = 1 << 20

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// respondError maps a service error onto a status code and a safe payload.
// Unclassified errors are logged and reported as a bare 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		ue *domain.UpstreamError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, conflictMessage(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.As(err, &ue):
		log.WarnContext(r.Context(), "upstream failure",
			slog.String("service", ue.Service),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: ue.Service + " request failed", Details: ue.Message})
	case errors.Is(err, domain.ErrUpstream):
		writeError(w, http.StatusBadGateway, "upstream request failed")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// conflictMessage keeps the "<kind> with that name already exists" text
// produced by the reference service and hides anything else.
func conflictMessage(err error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+domain.ErrAlreadyExists.Error())
	if strings.HasSuffix(msg, "with that name already exists") && !strings.Contains(msg, ":") {
		return msg
	}
	return "already exists"
}

// actorFrom builds the explicit actor from the authenticated request.
func actorFrom(r *http.Request) domain.Actor {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	return domain.NewActor(userID, ctxutil.IsAdminCtx(r.Context()))
}

// decodeJSON reads a bounded JSON body into dst. An empty body leaves dst
// untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return decodeBody(r, dst)
}

// decodeBody decodes r.Body as is. Callers bound the body themselves.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return domain.NewValidationError("body", "request body too large")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// pathUUID parses the named path value as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}

// parseDate parses an optional YYYY-MM-DD value. Empty means absent.
func parseDate(field string, raw *string) (*time.Time, *domain.FieldError) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, &domain.FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &t, nil
}

// dateRangeFrom reads the from and to query parameters.
func dateRangeFrom(r *http.Request) (domain.DateRange, error) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	var errs []domain.FieldError
	f, fe := parseDate("from", &from)
	if fe != nil {
		errs = append(errs, *fe)
	}
	t, te := parseDate("to", &to)
	if te != nil {
		errs = append(errs, *te)
	}
	if len(errs) > 0 {
		return domain.DateRange{}, domain.NewValidationErrors(errs)
	}
	return domain.DateRange{From: f, To: t}, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

func fieldErrors(errs ...*domain.FieldError) error {
	var out []domain.FieldError
	for _, e := range errs {
		if e != nil {
			out = append(out, *e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return domain.NewValidationErrors(out)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func badQuery(field, msg string) error {
	return domain.NewValidationError(field, fmt.Sprintf("invalid query parameter: %s", msg))
}
