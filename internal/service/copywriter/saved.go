package copywriter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// MaxCopyFieldLength bounds each saved copy field in runes.
const MaxCopyFieldLength = 10000

// SaveCopyInput is the user's copy for an item. Blank fields are stored as null.
type SaveCopyInput struct {
	ItemID              uuid.UUID
	EbayTitle           *string
	EbayDescription     *string
	FacebookTitle       *string
	FacebookDescription *string
	EtsyTitle           *string
	EtsyDescription     *string
}

// Validate checks the input and reports every failing field.
func (i SaveCopyInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	fields := []struct {
		name  string
		value *string
	}{
		{"ebayTitle", i.EbayTitle},
		{"ebayDescription", i.EbayDescription},
		{"facebookTitle", i.FacebookTitle},
		{"facebookDescription", i.FacebookDescription},
		{"etsyTitle", i.EtsyTitle},
		{"etsyDescription", i.EtsyDescription},
	}
	for _, f := range fields {
		if f.value != nil && utf8.RuneCountInString(*f.value) > MaxCopyFieldLength {
			errs = append(errs, domain.FieldError{Field: f.name, Message: fmt.Sprintf("max %d characters", MaxCopyFieldLength)})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetCopy returns the item's saved copy, or nil when none was saved yet.
func (s *Service) GetCopy(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*domain.SavedCopy, error) {
	if _, err := s.loadAccessible(ctx, actor, itemID); err != nil {
		return nil, err
	}

	c, err := s.saved.GetByItem(ctx, itemID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("get saved copy: %w", err)
	}
	return c, nil
}

// SaveCopy creates or replaces the item's saved copy.
func (s *Service) SaveCopy(ctx context.Context, actor domain.Actor, input SaveCopyInput) (*domain.SavedCopy, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadAccessible(ctx, actor, input.ItemID); err != nil {
		return nil, err
	}

	saved, err := s.saved.Upsert(ctx, &domain.SavedCopy{
		ItemID:              input.ItemID,
		EbayTitle:           blankToNil(input.EbayTitle),
		EbayDescription:     blankToNil(input.EbayDescription),
		FacebookTitle:       blankToNil(input.FacebookTitle),
		FacebookDescription: blankToNil(input.FacebookDescription),
		EtsyTitle:           blankToNil(input.EtsyTitle),
		EtsyDescription:     blankToNil(input.EtsyDescription),
	})
	if err != nil {
		return nil, fmt.Errorf("save copy: %w", err)
	}

	s.log.InfoContext(ctx, "copy saved",
		slog.String("user_id", actor.UserID.String()),
		slog.String("item_id", input.ItemID.String()),
	)
	return saved, nil
}

func blankToNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
