package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a unique-constraint failure from
// any of the supported drivers.
func isUniqueViolation(err error) bool {
	if code := sqlState(err); code != "" {
		return code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// isForeignKeyViolation reports whether err is a foreign-key failure, which
// happens when a referenced row is deleted between the existence check and
// the write.
func isForeignKeyViolation(err error) bool {
	if code := sqlState(err); code != "" {
		return code == pgForeignKeyViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}

// sqlState extracts the SQLSTATE from pgx or bun pgdriver errors.
func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// notFoundOr maps sql.ErrNoRows to a domain.ErrNotFound for entity/id and
// wraps every other error with the operation name.
func notFoundOr(err error, op, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(entity, id)
	}
	return fmt.Errorf("%s: %w", op, err)
}
