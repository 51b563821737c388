package reference

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CreateInput holds the fields of a new reference record. Fields that do
// not apply to Kind are ignored.
type CreateInput struct {
	Kind              domain.RefKind
	Name              string
	ParentID          *uuid.UUID
	Notes             *string
	SourceType        domain.SourceType
	Slug              *string
	DefaultFeePercent *decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := domain.CleanName(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > MaxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNotesLength)})
	}

	switch i.Kind {
	case domain.RefSource:
		if i.SourceType != "" && !i.SourceType.IsValid() {
			errs = append(errs, domain.FieldError{Field: "sourceType", Message: "invalid value"})
		}
	case domain.RefPlatform:
		if i.Slug != nil && domain.Slugify(*i.Slug) == "" {
			errs = append(errs, domain.FieldError{Field: "slug", Message: "must contain a letter or digit"})
		} else if i.Slug == nil && domain.Slugify(name) == "" && name != "" {
			errs = append(errs, domain.FieldError{Field: "slug", Message: "cannot be derived from name"})
		}
		if p := i.DefaultFeePercent; p != nil && (p.IsNegative() || p.GreaterThan(hundred)) {
			errs = append(errs, domain.FieldError{Field: "defaultFeePercent", Message: "must be between 0 and 100"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// record converts the input into the repository's record shape.
func (i CreateInput) record() domain.RefRecord {
	rec := domain.RefRecord{Kind: i.Kind, Name: domain.CleanName(i.Name)}
	switch i.Kind {
	case domain.RefCategory:
		rec.ParentID = i.ParentID
	case domain.RefLocation:
		rec.Notes = trimOrNil(i.Notes)
	case domain.RefSource:
		rec.Notes = trimOrNil(i.Notes)
		rec.SourceType = i.SourceType
		if rec.SourceType == "" {
			rec.SourceType = domain.SourceOther
		}
	case domain.RefPlatform:
		if i.Slug != nil {
			rec.Slug = domain.Slugify(*i.Slug)
		} else {
			rec.Slug = domain.Slugify(rec.Name)
		}
		rec.DefaultFeePercent = i.DefaultFeePercent
	}
	return rec
}

// MergeInput names the record to fold into another of the same kind.
type MergeInput struct {
	Kind   domain.RefKind
	FromID uuid.UUID
	ToID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MergeInput) Validate() error {
	var errs []domain.FieldError

	if i.FromID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "fromId", Message: "required"})
	}
	if i.ToID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "toId", Message: "required"})
	}
	if i.FromID != uuid.Nil && i.FromID == i.ToID {
		errs = append(errs, domain.FieldError{Field: "toId", Message: "must differ from fromId"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := domain.CleanName(*s)
	if t == "" {
		return nil
	}
	return &t
}
