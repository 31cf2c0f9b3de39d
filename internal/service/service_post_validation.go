package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-microblog/internal/validators"
	"github.com/MKhiriev/go-microblog/models"
)

// PostValidationService rejects malformed input before it reaches the
// wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewMicroblogValidator(),
	}
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := v.validator.Validate(ctx, post, validators.FieldUserID, validators.FieldContent); err != nil {
		return models.Post{}, validationError(err)
	}

	return v.inner.CreatePost(ctx, post)
}

func (v *PostValidationService) DeletePost(ctx context.Context, postID, userID int64) error {
	target := models.Post{ID: postID, UserID: userID}
	if err := v.validator.Validate(ctx, target, validators.FieldUserID, validators.FieldPostID); err != nil {
		return validationError(err)
	}

	return v.inner.DeletePost(ctx, postID, userID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}

// validationError translates validator errors into service sentinels.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyContent):
		return fmt.Errorf("%w: %w", ErrValidationNoContent, err)
	case errors.Is(err, validators.ErrContentTooLong):
		return fmt.Errorf("%w: %w", ErrValidationContentTooLong, err)
	case errors.Is(err, validators.ErrInvalidUserID):
		return fmt.Errorf("%w: %w", ErrValidationNoUserID, err)
	case errors.Is(err, validators.ErrInvalidPostID):
		return fmt.Errorf("%w: %w", ErrValidationInvalidPostID, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
