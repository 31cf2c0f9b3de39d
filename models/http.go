package models

// CreatePostRequest is the body accepted by the create_post endpoint.
// The owner is taken from the bearer token, never from the body.
type CreatePostRequest struct {
	Content string `json:"content"`
}
