// Package check holds the guards and error mapping shared by the services.
package check

import (
	"math"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// DB maps a DAL error to the response taxonomy. The driver error stays in
// the chain for logs and errors.Is, never in the client message.
func DB(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.Wrap(errno.NotFoundErr.WithMessage(notFound), err)
	}
	return errno.Wrap(errno.MysqlErr, err)
}

func User(userId string) error {
	if userId == "" {
		return errno.AuthorizationFailedErr.WithMessage("Unauthorized request")
	}
	return nil
}

func ID(id, what string) error {
	if !utils.IsValidID(id) {
		return errno.ParamErr.WithMessage("Invalid " + what + " id")
	}
	return nil
}

func Owner(ownerId, userId, action string) error {
	if !utils.SameID(ownerId, userId) {
		return errno.ForbiddenErr.WithMessage("You are not allowed to " + action)
	}
	return nil
}

// Page applies the listing defaults and returns the row offset. Pages whose
// offset would not fit an int are rejected.
func Page(page, limit int64) (int64, int64, int, error) {
	page, limit = utils.NormalizePage(page, limit)
	if page-1 > int64(math.MaxInt)/limit {
		return 0, 0, 0, errno.ParamErr.WithMessage("page is out of range")
	}
	return page, limit, int((page - 1) * limit), nil
}
