package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/reporting"
)

type reportingService interface {
	Report(ctx context.Context, actor domain.Actor, rng domain.DateRange) (*reporting.Report, error)
	ExportCSV(ctx context.Context, actor domain.Actor, rng domain.DateRange, w io.Writer) error
}

type usageService interface {
	List(ctx context.Context, actor domain.Actor, rng domain.DateRange) (*domain.UsageSummary, error)
}

// ReportHandler serves the reporting and AI usage endpoints.
type ReportHandler struct {
	reports reportingService
	usage   usageService
	now     func() time.Time
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports reportingService, usage usageService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		usage:   usage,
		now:     time.Now,
		log:     logger.With("handler", "report"),
	}
}

// Report returns rows and totals for items created in the range.
// GET /api/reporting?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFrom(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rep, err := h.reports.Report(r.Context(), actorFrom(r), rng)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(rep))
}

// Export streams the report as a CSV attachment. The body is buffered so a
// failure can still be reported as JSON.
// GET /api/reporting/export?from=&to=
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFrom(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := h.reports.ExportCSV(r.Context(), actorFrom(r), rng, &buf); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reporting.Filename(h.now())))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// Usage lists AI usage records and their total cost.
// GET /api/ai-usage?from=&to=
func (h *ReportHandler) Usage(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFrom(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	sum, err := h.usage.List(r.Context(), actorFrom(r), rng)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsageSummaryDTO(sum))
}
