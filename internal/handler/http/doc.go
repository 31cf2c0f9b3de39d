// Package http implements the HTTP transport layer of the microblog API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging and CORS
// are handled in this package before requests are delegated to the service
// layer. Every error response carries a JSON {"message": ...} body.
package http
