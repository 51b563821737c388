package reporting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/finance"
)

// CSVHeader is the first line of every export.
var CSVHeader = []string{
	"title", "status", "category", "platform",
	"cost_basis", "listing_price", "date_listed", "sale_price", "profit",
}

// ExportCSV writes the report rows of rng to w as CSV with LF line endings.
func (s *Service) ExportCSV(ctx context.Context, actor domain.Actor, rng domain.DateRange, w io.Writer) error {
	rep, err := s.Report(ctx, actor, rng)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rep.Rows {
		if err := cw.Write(Record(row)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.log.InfoContext(ctx, "report exported",
		slog.String("user_id", actor.UserID.String()),
		slog.Int("rows", len(rep.Rows)),
	)
	return nil
}

// Record renders a row as CSV fields in CSVHeader order.
func Record(r Row) []string {
	return []string{
		r.Title,
		r.Status.String(),
		r.Category,
		r.Platform,
		finance.Format(r.CostBasis),
		finance.Format(r.ListingPrice),
		formatDate(r.DateListed),
		finance.Format(r.SalePrice),
		finance.Format(r.Profit),
	}
}

// Filename returns the attachment name for an export made at now.
func Filename(now time.Time) string {
	return "report-" + now.UTC().Format(domain.DateLayout) + ".csv"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(domain.DateLayout)
}
