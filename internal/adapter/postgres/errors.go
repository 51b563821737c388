package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// violations maps the SQLSTATE codes the schema can raise to domain errors.
var violations = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: reference names, platform slugs
	"23503": domain.ErrNotFound,      // foreign_key_violation: unknown item or reference id
	"23514": domain.ErrValidation,    // check_violation: status and grade columns
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation: bad enum value
	"22003": domain.ErrValidation,    // numeric_value_out_of_range: money above numeric(12,2)
}

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and, when known, its id. Constraint violations name the constraint.
// Context errors and unknown codes are wrapped unchanged.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != uuid.Nil {
		subject = entity + " " + id.String()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target, ok := violations[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s (%s): %w", subject, pgErr.ConstraintName, target)
			}
			return fmt.Errorf("%s: %w", subject, target)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
