package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// KindRateLimited is the error kind of requests rejected by the limiter.
const KindRateLimited service.ErrorKind = "RateLimited"

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:            http.StatusForbidden,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrNotSubscribed:           http.StatusPaymentRequired,
	service.ErrInvalidArgument:         http.StatusBadRequest,
	service.ErrInvalidEncoding:         http.StatusBadRequest,
	service.ErrInvalidHexValue:         http.StatusBadRequest,
	service.ErrInvalidPayment:          http.StatusPaymentRequired,
	service.ErrAlreadySubscribed:       http.StatusConflict,
	service.ErrTrialAlreadyUsed:        http.StatusConflict,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrUnsupported:             http.StatusNotImplemented,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	models.ErrMalformedAddress:  http.StatusBadRequest,
	models.ErrMalformedRecordID: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoCallerInContext:          http.StatusUnauthorized,
	ErrInvalidRequestBody:         http.StatusBadRequest,
	ErrInvalidQueryParameter:      http.StatusBadRequest,
	ErrRateLimited:                http.StatusTooManyRequests,
	errRouteNotFound:              http.StatusNotFound,
}

// transportErrorKinds names the kind of errors raised before the service
// layer is reached.
var transportErrorKinds = map[error]service.ErrorKind{
	models.ErrMalformedAddress:    service.KindInvalidArgument,
	models.ErrMalformedRecordID:   service.KindInvalidEncoding,
	ErrEmptyAuthorizationHeader:   service.KindUnauthorized,
	ErrInvalidAuthorizationHeader: service.KindUnauthorized,
	ErrNoCallerInContext:          service.KindUnauthorized,
	ErrInvalidRequestBody:         service.KindInvalidEncoding,
	ErrInvalidQueryParameter:      service.KindInvalidArgument,
	ErrRateLimited:                KindRateLimited,
	errRouteNotFound:              service.KindNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func kindFromError(err error) service.ErrorKind {
	if kind := service.KindOf(err); kind != service.KindInternal {
		return kind
	}
	for target, kind := range transportErrorKinds {
		if errors.Is(err, target) {
			return kind
		}
	}
	return service.KindInternal
}

// writeError logs err with the request logger and writes it as an
// [models.ErrorResponse]. Internal failures never expose their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	resp := models.ErrorResponse{
		Kind:   string(kindFromError(err)),
		Reason: err.Error(),
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		resp.Reason = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Debug().Err(err).Str("kind", resp.Kind).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, status)
}
