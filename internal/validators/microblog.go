package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-microblog/models"
)

// Field names accepted by [MicroblogValidator.Validate].
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldContent  = "content"
	FieldUserID   = "user_id"
	FieldPostID   = "post_id"
)

// MicroblogValidator validates [models.User] and [models.Post] values.
// Both value and pointer forms are accepted.
type MicroblogValidator struct{}

// NewMicroblogValidator returns a [MicroblogValidator] as a [Validator].
func NewMicroblogValidator() Validator {
	return &MicroblogValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Default fields: email and password for users; content and user_id for
// posts. Returns ErrUnsupportedType for any other type.
func (v *MicroblogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Post:
		return v.validatePost(value, fields...)
	case *models.Post:
		return v.validatePost(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MicroblogValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MicroblogValidator) validatePost(post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if post.Content == "" {
				return ErrEmptyContent
			}
			// length is counted in characters, not bytes
			if utf8.RuneCountInString(post.Content) > models.MaxPostContentLength {
				return ErrContentTooLong
			}
		case FieldUserID:
			if post.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPostID:
			if post.ID <= 0 {
				return ErrInvalidPostID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
