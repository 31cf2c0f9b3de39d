package adapter

import "errors"

var (
	ErrEmptyAddress        = errors.New("empty server address")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoToken             = errors.New("no bearer token set, log in first")
)
