package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/validators"
	"github.com/MKhiriev/go-microblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const credentials = `{"email":"alice@example.com","password":"secret"}`

var testUser = models.User{Email: "alice@example.com", Password: "secret"}

func TestRegister_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), testUser).
		Return(models.User{UserID: 1, Email: testUser.Email, Password: "$2a$10$hash"}, nil)

	rr := serve(h, http.MethodPost, "/register", credentials, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"email":"alice@example.com"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        `{"email":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "empty body",
			body:        "",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "missing password",
			body:        credentials,
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPassword),
			wantStatus:  http.StatusBadRequest,
			wantMessage: service.ErrInvalidDataProvided.Error(),
		},
		{
			name:        "email already registered",
			body:        credentials,
			serviceErr:  fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: models.MessageEmailRegistered,
		},
		{
			name:        "unexpected error hides details",
			body:        credentials,
			serviceErr:  fmt.Errorf("%w: connection reset", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: models.MessageRegistrationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			if tt.serviceErr != nil {
				mocks.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rr := serve(h, http.MethodPost, "/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			assert.NotContains(t, rr.Body.String(), "connection reset")
		})
	}
}

func TestLogin_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	found := models.User{UserID: 7, Email: testUser.Email}

	gomock.InOrder(
		mocks.auth.EXPECT().Login(gomock.Any(), testUser).Return(found, nil),
		mocks.auth.EXPECT().CreateToken(gomock.Any(), found).Return(models.Token{SignedString: "signed.jwt.token", UserID: 7}, nil),
	)

	rr := serve(h, http.MethodPost, "/login", credentials, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Login successful","token":"signed.jwt.token"}`, rr.Body.String())
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		loginErr    error
		tokenErr    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        "not json",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "missing fields",
			body:        `{}`,
			loginErr:    fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyEmail),
			wantStatus:  http.StatusBadRequest,
			wantMessage: service.ErrInvalidDataProvided.Error(),
		},
		{
			name:        "unknown email",
			body:        credentials,
			loginErr:    fmt.Errorf("user search by email failed: %w", store.ErrNoUserWasFound),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: models.MessageLoginFailed,
		},
		{
			name:        "wrong password",
			body:        credentials,
			loginErr:    service.ErrWrongPassword,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: models.MessageLoginFailed,
		},
		{
			name:        "store failure",
			body:        credentials,
			loginErr:    errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: models.MessageLoginFailed,
		},
		{
			name:        "token creation fails",
			body:        credentials,
			tokenErr:    service.ErrTokenCreationFailed,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: models.MessageLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			if tt.loginErr != nil {
				mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.loginErr)
			}
			if tt.tokenErr != nil {
				mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
				mocks.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.tokenErr)
			}

			rr := serve(h, http.MethodPost, "/login", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}
