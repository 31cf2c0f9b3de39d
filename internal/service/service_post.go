package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-microblog/internal/events"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/models"
)

type postService struct {
	postRepository store.PostRepository
	publisher      events.Publisher

	logger *logger.Logger
}

// NewPostService returns the core PostService. It expects validated input;
// wrap it with NewPostValidationService before exposing it.
func NewPostService(postRepository store.PostRepository, publisher events.Publisher, logger *logger.Logger) PostService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}

	return &postService{
		postRepository: postRepository,
		publisher:      publisher,
		logger:         logger,
	}
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

// CreatePost stores post, defaulting its Timestamp to the current UTC time,
// and publishes a post.created event once the row is committed.
func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if post.Timestamp.IsZero() {
		post.Timestamp = now()
	}
	post.Timestamp = post.Timestamp.UTC()

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	p.publish(ctx, models.PostEvent{
		Type:      models.PostCreated,
		PostID:    created.ID,
		UserID:    created.UserID,
		Timestamp: created.Timestamp,
	})

	return created, nil
}

// DeletePost removes the post owned by userID and publishes a post.deleted
// event.
func (p *postService) DeletePost(ctx context.Context, postID, userID int64) error {
	if err := p.postRepository.DeletePost(ctx, postID, userID); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	p.publish(ctx, models.PostEvent{
		Type:      models.PostDeleted,
		PostID:    postID,
		UserID:    userID,
		Timestamp: now(),
	})

	return nil
}

func (p *postService) publish(ctx context.Context, event models.PostEvent) {
	if err := p.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*postService.publish").
			Str("type", string(event.Type)).
			Int64("post_id", event.PostID).
			Msg("error publishing post event")
	}
}

// now is truncated to microseconds, the precision PostgreSQL keeps, so a
// created post reads back with the same timestamp it was returned with.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
