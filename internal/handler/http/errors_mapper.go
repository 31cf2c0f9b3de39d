package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
)

// errorResponse binds a sentinel error to the status code and client-facing
// message it produces. An empty message means the sentinel's own text.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first sentinel found in the error
// chain wins.
var errorResponses = []errorResponse{
	{target: utils.ErrInvalidJSON, status: http.StatusBadRequest, message: "Invalid JSON was passed"},
	{target: store.ErrEmailAlreadyExists, status: http.StatusBadRequest, message: models.MessageEmailRegistered},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: service.ErrValidationNoContent, status: http.StatusBadRequest},
	{target: service.ErrValidationContentTooLong, status: http.StatusBadRequest},
	{target: service.ErrValidationNoUserID, status: http.StatusBadRequest},

	{target: service.ErrWrongPassword, status: http.StatusUnauthorized, message: models.MessageLoginFailed},
	{target: store.ErrNoUserWasFound, status: http.StatusUnauthorized, message: models.MessageLoginFailed},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	{target: ErrNoAuthenticatedUser, status: http.StatusUnauthorized},
	{target: store.ErrUserNotExists, status: http.StatusUnauthorized},

	{target: store.ErrNotPostOwner, status: http.StatusForbidden, message: models.MessageNoDeletePermission},

	{target: store.ErrPostNotFound, status: http.StatusNotFound, message: models.MessagePostNotFound},
	{target: service.ErrValidationInvalidPostID, status: http.StatusNotFound, message: models.MessagePostNotFound},
	{target: ErrInvalidPostID, status: http.StatusNotFound, message: models.MessagePostNotFound},
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

// messageFromError returns the client-facing message for err. Unknown
// errors get fallback so internal details never reach the response body.
func messageFromError(err error, fallback string) string {
	if _, message := lookupError(err); message != "" {
		return message
	}
	return fallback
}

func lookupError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			if resp.message == "" {
				return resp.status, resp.target.Error()
			}
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, ""
}

// writeError logs err with the request-scoped logger and writes the mapped
// status with a {"message": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error, fallback string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteMessage(w, messageFromError(err, fallback), status)
}
