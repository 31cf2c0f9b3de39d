package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "valid-token"

var bearer = map[string]string{"Authorization": "Bearer " + testToken}

// expectAuthenticated makes the auth middleware accept testToken for userID.
func expectAuthenticated(mocks testServices, userID int64) {
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: userID}, nil)
}

func TestGetPosts_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	email := "alice@example.com"
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mocks.posts.EXPECT().ListPosts(gomock.Any()).Return([]models.Post{
		{ID: 1, UserID: 1, Content: "first", Timestamp: ts, UserEmail: &email},
		{ID: 2, UserID: 9, Content: "orphan", Timestamp: ts.Add(time.Minute)},
	}, nil)

	rr := serve(h, http.MethodGet, "/get_posts", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[
		{"id":1,"user_id":1,"content":"first","timestamp":"2026-03-01T10:00:00Z","user_email":"alice@example.com"},
		{"id":2,"user_id":9,"content":"orphan","timestamp":"2026-03-01T10:01:00Z","user_email":null}
	]`, rr.Body.String())
}

func TestGetPosts_EmptyIsArray(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.posts.EXPECT().ListPosts(gomock.Any()).Return(nil, nil)

	rr := serve(h, http.MethodGet, "/get_posts", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetPosts_ServiceError(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.posts.EXPECT().ListPosts(gomock.Any()).Return(nil, fmt.Errorf("%w: disk I/O error", store.ErrScanningRows))

	rr := serve(h, http.MethodGet, "/get_posts", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, models.MessageGetPostsFailed, decodeMessage(t, rr))
}

func TestCreatePost_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	expectAuthenticated(mocks, 7)
	mocks.posts.EXPECT().
		CreatePost(gomock.Any(), models.Post{UserID: 7, Content: "hello"}).
		Return(models.Post{ID: 11, UserID: 7, Content: "hello", Timestamp: ts}, nil)

	// user_id in the body must not override the token owner
	rr := serve(h, http.MethodPost, "/create_post", `{"content":"hello","user_id":99}`, bearer)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{
		"message":"Post created successfully",
		"post":{"id":11,"content":"hello","timestamp":"2026-03-01T10:00:00Z"}
	}`, rr.Body.String())
}

func TestCreatePost_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        `{"content":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "empty content",
			body:        `{"content":""}`,
			serviceErr:  service.ErrValidationNoContent,
			wantStatus:  http.StatusBadRequest,
			wantMessage: service.ErrValidationNoContent.Error(),
		},
		{
			name:        "content too long",
			body:        `{"content":"x"}`,
			serviceErr:  service.ErrValidationContentTooLong,
			wantStatus:  http.StatusBadRequest,
			wantMessage: service.ErrValidationContentTooLong.Error(),
		},
		{
			name:        "owner vanished",
			body:        `{"content":"x"}`,
			serviceErr:  fmt.Errorf("%w: FOREIGN KEY constraint failed", store.ErrUserNotExists),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: store.ErrUserNotExists.Error(),
		},
		{
			name:        "store failure",
			body:        `{"content":"x"}`,
			serviceErr:  errors.New("database is locked"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: models.MessageCreatePostFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			expectAuthenticated(mocks, 7)
			if tt.serviceErr != nil {
				mocks.posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, tt.serviceErr)
			}

			rr := serve(h, http.MethodPost, "/create_post", tt.body, bearer)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}

func TestCreatePost_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodPost, "/create_post", `{"content":"hello"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeMessage(t, rr))
}

func TestDeletePost_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	expectAuthenticated(mocks, 7)
	mocks.posts.EXPECT().DeletePost(gomock.Any(), int64(11), int64(7)).Return(nil)

	rr := serve(h, http.MethodDelete, "/delete_post/11", "", bearer)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.MessagePostDeleted, decodeMessage(t, rr))
}

func TestDeletePost_Failures(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		serviceErr  error
		callService bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "non-numeric id",
			target:      "/delete_post/abc",
			wantStatus:  http.StatusNotFound,
			wantMessage: models.MessagePostNotFound,
		},
		{
			name:        "non-positive id",
			target:      "/delete_post/0",
			callService: true,
			serviceErr:  service.ErrValidationInvalidPostID,
			wantStatus:  http.StatusNotFound,
			wantMessage: models.MessagePostNotFound,
		},
		{
			name:        "missing post",
			target:      "/delete_post/404",
			callService: true,
			serviceErr:  fmt.Errorf("delete: %w", store.ErrPostNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: models.MessagePostNotFound,
		},
		{
			name:        "someone else's post",
			target:      "/delete_post/5",
			callService: true,
			serviceErr:  fmt.Errorf("delete: %w", store.ErrNotPostOwner),
			wantStatus:  http.StatusForbidden,
			wantMessage: models.MessageNoDeletePermission,
		},
		{
			name:        "store failure",
			target:      "/delete_post/5",
			callService: true,
			serviceErr:  fmt.Errorf("%w: connection refused", store.ErrBeginningTransaction),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: models.MessageDeletePostFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			expectAuthenticated(mocks, 7)
			if tt.callService {
				mocks.posts.EXPECT().DeletePost(gomock.Any(), gomock.Any(), int64(7)).Return(tt.serviceErr)
			}

			rr := serve(h, http.MethodDelete, tt.target, "", bearer)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}

func TestCreatePost_NoUserInContext(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodPost, "/create_post", `{"content":"x"}`, map[string]string{"Authorization": "Token abc"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Calling the handler directly bypasses the middleware entirely.
	rec := newRecorderFor(t, h.createPost, http.MethodPost, `{"content":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, ErrNoAuthenticatedUser.Error(), msg.Message)
}
