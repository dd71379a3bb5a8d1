package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// exclusion_violation, raised by the no-overlap constraint on appointments.
const pgExclusionViolation = "23P01"

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation
}
