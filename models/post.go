package models

import "time"

// MaxPostContentLength is the upper bound for [Post.Content], counted in
// characters (runes), not bytes.
const MaxPostContentLength = 500

// Post is a short text message owned by a single [User].
// Posts are immutable after creation; the only lifecycle transition is
// deletion by the owner.
type Post struct {
	// ID is the unique identifier assigned by the store.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Content is the post body, at most MaxPostContentLength characters.
	Content string `json:"content"`

	// Timestamp is the creation time in UTC.
	Timestamp time.Time `json:"timestamp"`

	// UserEmail is the owner's email, populated only by list queries that
	// join the users table. Nil when the owner row is missing.
	UserEmail *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
