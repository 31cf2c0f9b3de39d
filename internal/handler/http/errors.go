// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoAuthenticatedUser is returned by protected handlers when the
	// request context carries no user id, i.e. the auth middleware did not run.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")

	// ErrInvalidPostID is returned when the {id} path segment of
	// /delete_post/{id} is not a base-10 integer.
	ErrInvalidPostID = errors.New("invalid post id in path")
)
