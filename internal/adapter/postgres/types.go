package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Scan-side conversions: pgtype -> domain
// ---------------------------------------------------------------------------

// TextPtr converts pgtype.Text to *string (NULL -> nil).
func TextPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// UUIDPtr converts pgtype.UUID to *uuid.UUID (NULL -> nil).
func UUIDPtr(u pgtype.UUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	id := uuid.UUID(u.Bytes)
	return &id
}

// DatePtr converts pgtype.Date to *time.Time at UTC midnight (NULL -> nil).
func DatePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}

// TimePtr converts pgtype.Timestamptz to *time.Time (NULL -> nil).
func TimePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// DecimalPtr converts decimal.NullDecimal to *decimal.Decimal (NULL -> nil).
func DecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// Int8Ptr converts pgtype.Int8 to *int64 (NULL -> nil).
func Int8Ptr(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

// ---------------------------------------------------------------------------
// Arg-side conversions: domain -> driver values
// ---------------------------------------------------------------------------

// NullDecimal converts *decimal.Decimal to a nullable driver value.
func NullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// NullText converts *string to pgtype.Text (nil -> NULL).
func NullText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// NullUUID converts *uuid.UUID to pgtype.UUID (nil -> NULL).
func NullUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

// NullDate converts *time.Time to pgtype.Date (nil -> NULL).
func NullDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// NullInt8 converts *int64 to pgtype.Int8 (nil -> NULL).
func NullInt8(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}
