package http

import (
	"errors"
	"net/http"

	"github.com/xmppfed/go-keyhub/internal/service"
	"github.com/xmppfed/go-keyhub/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationFailed:        http.StatusBadRequest,

	store.ErrJIDAlreadyExists:    http.StatusConflict,
	store.ErrNoPublisherWasFound: http.StatusNotFound,
	store.ErrBundleNotFound:      http.StatusNotFound,
	store.ErrNoPreKeysLeft:       http.StatusGone,
	store.ErrServiceNotFound:     http.StatusNotFound,
	store.ErrDeviceListNotSaved:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommitingTransaction:  http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
