package models

import "time"

// PostEventType names the kind of change a [PostEvent] describes.
type PostEventType string

const (
	PostCreated PostEventType = "post.created"
	PostDeleted PostEventType = "post.deleted"
)

// PostEvent is published after a post has been committed or removed.
type PostEvent struct {
	Type      PostEventType `json:"type"`
	PostID    int64         `json:"post_id"`
	UserID    int64         `json:"user_id"`
	Timestamp time.Time     `json:"timestamp"`
}
