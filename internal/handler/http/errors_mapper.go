package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/service"
	"github.com/MKhiriev/go-mail-sync/internal/store"
)

var errorStatusMap = map[error]int{
	adapter.ErrMaxRetriesReached: http.StatusBadGateway,
	adapter.ErrMissingTokens:     http.StatusBadGateway,
	adapter.ErrInvalidIDToken:    http.StatusBadGateway,

	service.ErrInvalidEmail:     http.StatusBadRequest,
	service.ErrEmptyAuthCode:    http.StatusBadRequest,
	service.ErrUnknownResource:  http.StatusBadRequest,
	service.ErrAccountNotLinked: http.StatusConflict,
	service.ErrNormalization:    http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrMergeFailed:        http.StatusInternalServerError,
	store.ErrMalformedContainer: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
