package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter] for the server at adapterCfg.HTTPAddress. A token present
// in the configuration is installed right away.
//
// Returns [ErrEmptyAddress] if no address is configured.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, ErrEmptyAddress
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

// SetToken implements [ServerAdapter]. Surrounding whitespace is trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to /register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.UserResponse, error) {
	var registered models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/register")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return registered, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to /login and
// stores the token from the response body.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResponse).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if loginResponse.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
		loginResponse.Token = token
	}

	h.SetToken(loginResponse.Token)
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Str("email", user.Email).Msg("logged in")

	return loginResponse.Token, nil
}

// GetPosts implements [ServerAdapter].
func (h *httpServerAdapter) GetPosts(ctx context.Context) ([]models.PostResponse, error) {
	var posts []models.PostResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&posts).
		Get("/get_posts")
	if err != nil {
		return nil, fmt.Errorf("get posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []models.PostResponse{}
	}
	return posts, nil
}

// CreatePost implements [ServerAdapter]. Returns [ErrNoToken] without a
// network call when no token is set.
func (h *httpServerAdapter) CreatePost(ctx context.Context, content string) (models.CreatedPost, error) {
	var created models.CreatedPostResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.CreatedPost{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreatePostRequest{Content: content}).
		SetResult(&created).
		Post("/create_post")
	if err != nil {
		return models.CreatedPost{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreatedPost{}, err
	}

	return created.Post, nil
}

// DeletePost implements [ServerAdapter]. Returns [ErrNoToken] without a
// network call when no token is set.
func (h *httpServerAdapter) DeletePost(ctx context.Context, postID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Delete("/delete_post/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
