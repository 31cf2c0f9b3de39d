package models

import "time"

// User represents an account entity used for authentication and as the
// owner of posts.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [NewUserResponse] to build the outbound representation.
type User struct {
	// UserID is the unique identifier assigned by the store.
	UserID int64 `json:"-"`

	// Email is the unique login credential of the user.
	Email string `json:"email"`

	// Password carries the plaintext password on the way in and the bcrypt
	// hash once loaded from the store. It is accepted from request bodies
	// but never written to a response.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
