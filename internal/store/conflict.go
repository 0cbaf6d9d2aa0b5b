package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// constraintColumns maps the uniqueness constraints created by the migrations
// to the column a caller collided on. Constraints added later fall back to
// the <table>_<column>_key naming convention.
var constraintColumns = map[string]string{
	"account_email_key":        "email",
	"donation_center_name_key": "name",
	"item_category_name_key":   "name",
}

// DuplicateColumn identifies which uniquely-constrained column caused err.
// It returns "" when err is not a Postgres uniqueness violation. Only the
// structured error fields are inspected, never the message text.
func DuplicateColumn(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	if pgErr.Code != pgerrcode.UniqueViolation {
		return ""
	}
	if column, ok := constraintColumns[pgErr.ConstraintName]; ok {
		return column
	}
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}

	name, ok := strings.CutSuffix(pgErr.ConstraintName, "_key")
	if !ok {
		return ""
	}
	if pgErr.TableName != "" {
		if column, ok := strings.CutPrefix(name, pgErr.TableName+"_"); ok {
			return column
		}
	}
	return name
}

// DuplicateColumn implements the classifier half of the auth.Store port.
func (r *Repository) DuplicateColumn(err error) string {
	return DuplicateColumn(err)
}

// IsConstraintViolation reports whether err is any Postgres integrity
// constraint violation (unique, foreign key, not-null, check).
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
}
