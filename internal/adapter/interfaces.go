// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the microblog API.
//
// [ServerAdapter] decouples callers such as the command-line client from the
// protocol. The package ships an HTTP/JSON implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrNotFound] for 404). The server's {"message": ...} text is kept in the
// wrapped error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-microblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the microblog
// server. Implementations handle serialisation, the bearer token and the
// mapping of transport errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Login calls it automatically.
	SetToken(token string)

	// Token returns the bearer token currently held, or "" if none.
	Token() string

	// Register creates an account and returns its public representation.
	// It does not log the user in.
	Register(ctx context.Context, user models.User) (models.UserResponse, error)

	// Login exchanges credentials for a bearer token, stores it via SetToken
	// and returns it.
	Login(ctx context.Context, user models.User) (string, error)

	// GetPosts lists every post in creation order.
	GetPosts(ctx context.Context) ([]models.PostResponse, error)

	// CreatePost publishes content as the token owner. Requires a token.
	CreatePost(ctx context.Context, content string) (models.CreatedPost, error)

	// DeletePost removes a post owned by the token owner. Requires a token.
	DeletePost(ctx context.Context, postID int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
