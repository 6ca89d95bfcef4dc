package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrUserNotFound:             http.StatusBadRequest,
	service.ErrConfirmationCodeNotFound: http.StatusBadRequest,
	service.ErrAlreadyConfirmed:         http.StatusBadRequest,
	service.ErrConfirmationExpired:      http.StatusBadRequest,
	service.ErrConfirmationStateChanged: http.StatusBadRequest,
	service.ErrDeliveryFailed:           http.StatusBadRequest,
	service.ErrWrongCredentials:         http.StatusUnauthorized,
	service.ErrUserNotConfirmed:         http.StatusUnauthorized,
	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrTokenCreationFailed:      http.StatusInternalServerError,

	store.ErrLoginAlreadyExists: http.StatusBadRequest,
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

// errorFieldMap pins errors that always concern the same request field.
// Other client errors are reported against the field the endpoint received.
var errorFieldMap = map[error]string{
	store.ErrLoginAlreadyExists: "login",
	store.ErrEmailAlreadyExists: "email",
}

var errorMessageMap = map[error]string{
	store.ErrLoginAlreadyExists:         "should be unique",
	store.ErrEmailAlreadyExists:         "should be unique",
	service.ErrInvalidDataProvided:      "invalid value",
	service.ErrUserNotFound:             "user with this email doesn't exist",
	service.ErrConfirmationCodeNotFound: "confirmation code is incorrect",
	service.ErrAlreadyConfirmed:         "email is already confirmed",
	service.ErrConfirmationExpired:      "confirmation code is expired",
	service.ErrConfirmationStateChanged: "confirmation code was changed, try again",
	service.ErrDeliveryFailed:           "confirmation email could not be sent",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// fieldErrorFromError describes err as a field error. field is used unless
// the error names its own field.
func fieldErrorFromError(err error, field string) models.FieldError {
	fieldError := models.FieldError{Field: field, Message: "invalid value"}

	for target, name := range errorFieldMap {
		if errors.Is(err, target) {
			fieldError.Field = name
			break
		}
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			fieldError.Message = message
			break
		}
	}

	return fieldError
}

// writeServiceError answers a failed request: client errors get an
// errorsMessages body, everything else a bare status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, field string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status == http.StatusBadRequest:
		log.Warn().Err(err).Str("field", field).Msg("request rejected")
		utils.WriteJSON(w, models.APIErrorResult{
			ErrorsMessages: []models.FieldError{fieldErrorFromError(err, field)},
		}, status)
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(status), status)
	default:
		log.Warn().Err(err).Msg("request rejected")
		http.Error(w, http.StatusText(status), status)
	}
}
