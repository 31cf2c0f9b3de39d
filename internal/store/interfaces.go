package store

import (
	"context"

	"github.com/MKhiriev/go-microblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrNoUserWasFound when no row matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists posts.
type PostRepository interface {
	// CreatePost inserts post and returns it with ID set. An unknown
	// owner yields ErrUserNotExists.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// GetPost returns the post with its owner's email, or ErrPostNotFound.
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	// ListPosts returns every post in ascending id order with the owner's
	// email joined in.
	ListPosts(ctx context.Context) ([]models.Post, error)
	// DeletePost removes the post if userID owns it. It returns
	// ErrPostNotFound or ErrNotPostOwner otherwise.
	DeletePost(ctx context.Context, postID, userID int64) error
}
