package http

import (
	"errors"
	"net/http"

	"github.com/akhetov/hybrid-analyzer/internal/adapter"
	"github.com/akhetov/hybrid-analyzer/internal/service"
	"github.com/akhetov/hybrid-analyzer/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrAnalysisLogNotSaved:   http.StatusInternalServerError,

	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRow:    http.StatusInternalServerError,
	store.ErrScanningRows:   http.StatusInternalServerError,

	adapter.ErrServiceWarmingUp:     http.StatusServiceUnavailable,
	adapter.ErrTimeout:              http.StatusGatewayTimeout,
	adapter.ErrAuthenticationFailed: http.StatusBadGateway,
	adapter.ErrUpstream:             http.StatusBadGateway,
	adapter.ErrTransport:            http.StatusBadGateway,
	adapter.ErrMalformedResponse:    http.StatusBadGateway,
	adapter.ErrEmptyResponse:        http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
