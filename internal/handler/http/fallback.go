// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-microblog/internal/utils"
)

// notFound is registered as the router's NotFound handler so that unknown
// paths answer with the same JSON {"message": ...} body as every other
// error response instead of chi's plain-text default.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// It is invoked when the path matches a route but the HTTP method is not
// handled by it, e.g. GET /create_post.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
