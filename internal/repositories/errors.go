package repositories

import (
	"errors"

	"blogly/internal/apperror"

	"gorm.io/gorm"
)

func notFound(message string) error {
	return apperror.NewNotFound(message)
}

// translate maps gorm sentinel errors onto apperror types. Anything else is
// returned unchanged.
func translate(err error, notFoundMsg, integrityMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && notFoundMsg != "":
		return apperror.NewNotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		if integrityMsg == "" {
			integrityMsg = "the change violates a database constraint"
		}
		return apperror.NewIntegrity(integrityMsg, err)
	default:
		return err
	}
}
