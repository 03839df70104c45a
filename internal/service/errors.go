package service

import (
	"JewelryStore/internal/apperr"
	"errors"

	"gorm.io/gorm"
)

// storeErr переводит ошибку хранилища в apperr: отсутствие записи — NotFound(what),
// доменные ошибки проходят как есть, остальное — Internal.
func storeErr(err error, what string) error {
	var appErr *apperr.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(what)
	default:
		return apperr.Internal(err)
	}
}
