package domain

import "time"

// DateRange bounds a query by creation date. Nil ends are open.
// From and To are calendar dates; To is inclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Bounds returns the half-open timestamp interval [start, end) covered by the range.
// A zero time means the side is unbounded.
func (r DateRange) Bounds() (start, end time.Time) {
	if r.From != nil {
		f := r.From.UTC()
		start = time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	}
	if r.To != nil {
		t := r.To.UTC()
		end = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	}
	return start, end
}
