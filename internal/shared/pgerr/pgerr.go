// Package pgerr classifies postgres constraint violations surfaced through
// gorm and pgx.
package pgerr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Constraint returns the violated constraint when err is a unique violation.
// Drivers that only surface the message text are matched on
// "duplicate key value" plus one of the known constraint names.
func Constraint(err error, known ...string) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != UniqueViolation {
			return "", false
		}
		return pgErr.ConstraintName, true
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "duplicate key value") {
		return "", false
	}
	for _, name := range known {
		if strings.Contains(msg, name) {
			return name, true
		}
	}
	return "", true
}

func IsUnique(err error) bool {
	_, ok := Constraint(err)
	return ok
}

func IsForeignKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ForeignKeyViolation
}
