package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{utils.ErrInvalidJSON, http.StatusBadRequest},
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrValidationNoContent, http.StatusBadRequest},
		{service.ErrValidationContentTooLong, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{fmt.Errorf("login: %w", store.ErrNoUserWasFound), http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{ErrNoAuthenticatedUser, http.StatusUnauthorized},
		{store.ErrNotPostOwner, http.StatusForbidden},
		{store.ErrPostNotFound, http.StatusNotFound},
		{service.ErrValidationInvalidPostID, http.StatusNotFound},
		{ErrInvalidPostID, http.StatusNotFound},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, models.MessageEmailRegistered, messageFromError(store.ErrEmailAlreadyExists, "fallback"))
	assert.Equal(t, models.MessageNoDeletePermission, messageFromError(store.ErrNotPostOwner, "fallback"))
	assert.Equal(t, service.ErrValidationNoContent.Error(),
		messageFromError(fmt.Errorf("%w: content is empty", service.ErrValidationNoContent), "fallback"))
	assert.Equal(t, "fallback", messageFromError(errors.New("pq: secret internals"), "fallback"))
}
