package repository

import (
	"errors"

	"foodapp-api/errs"

	"gorm.io/gorm"
)

// ErrStatusMismatch is returned by guarded status updates when the row exists
// but is no longer in one of the expected states.
var ErrStatusMismatch = errors.New("order status changed concurrently")

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(msg).WithCause(err)
	}
	return err
}
