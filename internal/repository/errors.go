package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicateKeyError reports whether err is a unique constraint violation
// mentioning the given constraint or column name
func IsDuplicateKeyError(err error, name string) bool {
	if err == nil {
		return false
	}
	name = strings.ToLower(name)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), name)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		// 1062 = ER_DUP_ENTRY
		return myErr.Number == 1062 && strings.Contains(strings.ToLower(myErr.Message), name)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") && strings.Contains(msg, name)
}

// IsForeignKeyError reports whether err is a foreign key violation.
// SQLite does not name the constraint, so any FK failure matches there.
func IsForeignKeyError(err error, name string) bool {
	if err == nil {
		return false
	}
	name = strings.ToLower(name)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503 = foreign_key_violation
		return pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), name)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		// 1452 = ER_NO_REFERENCED_ROW_2
		return myErr.Number == 1452 && strings.Contains(strings.ToLower(myErr.Message), name)
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
