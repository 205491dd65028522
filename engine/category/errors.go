package category

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCategoryNotFound is returned by identity-scoped operations (single
// update/delete, or a member of an atomic batch) that matched zero rows.
var ErrCategoryNotFound = errors.New("category not found")

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err stems from a uniqueness constraint
// (code or url_slug collision).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
