// Package pgerrors classifies PostgreSQL constraint violations, whether or not
// GORM was opened with TranslateError.
package pgerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNumericOverflow     = "22003"
)

// IsUniqueViolation reports a duplicate key error.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports a foreign key error, e.g. deleting a referenced row.
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasCode(err, codeForeignKeyViolation)
}

// IsNumericOverflow reports a value too large for its numeric column.
func IsNumericOverflow(err error) bool {
	return hasCode(err, codeNumericOverflow)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
