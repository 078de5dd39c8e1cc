package postgres

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced in driver error messages.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheckViolation)
}

// translateWriteError maps constraint violations on a write to domain errors.
// Anything else becomes a DatabaseExecuteError carrying operation as details.
func translateWriteError(err error, conflict, invalid *domainerrors.BaseError, operation string) error {
	switch {
	case conflict != nil && isUniqueConstraintViolation(err):
		return conflict.WrapMessage(operation)
	case isForeignKeyConstraintViolation(err):
		return invalid.WrapMessage("invalid foreign key reference")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return invalid.WrapMessage("missing or invalid required information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, operation)
	}
}
