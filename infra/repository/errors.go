package repository

import (
	"errors"

	"github.com/amirasaad/bankaccount/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors anywhere in err's chain to domain
// errors. Unrecognised errors are returned unchanged.
//
// gorm.ErrDuplicatedKey is only produced when the connection is opened with
// TranslateError enabled (see infra.NewDBConnection).
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	default:
		return err
	}
}

// WrapError runs op and maps its error with MapGormErrorToDomain.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(m).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
