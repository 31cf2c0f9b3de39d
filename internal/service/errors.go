package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoContent      = errors.New("post content is required")
	ErrValidationContentTooLong = errors.New("post content is too long")
	ErrValidationNoUserID       = errors.New("no user ID was given")
	ErrValidationInvalidPostID  = errors.New("invalid post ID")
)
