package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/mock"
	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOrigin = "http://localhost:3000"

type testServices struct {
	auth    *mock.MockAuthService
	posts   *mock.MockPostService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		posts:   mock.NewMockPostService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		PostService:    mocks.posts,
		AppInfoService: mocks.appInfo,
	}, config.Server{HTTPAddress: "localhost:8080", AllowedOrigin: testOrigin}, logger.Nop())

	return h, mocks
}

// serve runs a request through the full router, middleware included.
func serve(h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg), "body: %s", rr.Body.String())
	return msg.Message
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{AllowedOrigin: testOrigin}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, testOrigin, h.allowedOrigin)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[method+" "+route.Pattern] = true
		}
	}

	for _, want := range []string{
		"POST /register",
		"POST /login",
		"GET /get_posts",
		"GET /version",
		"POST /create_post",
		"DELETE /delete_post/{id}",
	} {
		assert.True(t, registered[want], "route %q is not registered", want)
	}
}

func TestInit_UnknownRouteReturnsJSON404(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusText(http.StatusNotFound), decodeMessage(t, rr))
}

func TestInit_WrongMethodReturnsJSON405(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/register", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusMethodNotAllowed), decodeMessage(t, rr))
}

func TestGetServerVersion(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.0.0")

	rr := serve(h, http.MethodGet, "/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.0.0", rr.Body.String())
}

func TestCORS(t *testing.T) {
	t.Run("allowed origin is echoed", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.posts.EXPECT().ListPosts(gomock.Any()).Return(nil, nil)

		rr := serve(h, http.MethodGet, "/get_posts", "", map[string]string{"Origin": testOrigin})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin gets no grant", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.posts.EXPECT().ListPosts(gomock.Any()).Return(nil, nil)

		rr := serve(h, http.MethodGet, "/get_posts", "", map[string]string{"Origin": "http://evil.example"})

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight skips authentication", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h, http.MethodOptions, "/create_post", "", map[string]string{
			"Origin":                         testOrigin,
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Authorization, Content-Type",
		})

		assert.Less(t, rr.Code, http.StatusMultipleChoices)
		assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}

// newRecorderFor calls fn directly, without router or middleware.
func newRecorderFor(t *testing.T, fn http.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	fn(rr, req)
	return rr
}
