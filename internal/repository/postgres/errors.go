package postgres

import (
	"errors"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	constraintTimeOrder = "reservations_time_order"
	constraintUserEmail = "users_email_key"
)

// classify maps known constraint violations onto domain errors; anything
// else is returned unchanged
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ExclusionViolation:
		return domain.ErrReservationOverlap
	case pgerrcode.ForeignKeyViolation:
		return domain.ErrReferenceNotFound
	case pgerrcode.CheckViolation:
		if pgErr.ConstraintName == constraintTimeOrder {
			return domain.ErrInvalidTimeRange
		}
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == constraintUserEmail {
			return domain.ErrEmailTaken
		}
	}
	return err
}
