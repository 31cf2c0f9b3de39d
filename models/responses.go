package models

import "time"

// Response messages shared by the HTTP layer and the API client.
const (
	MessageLoginSuccessful    = "Login successful"
	MessagePostCreated        = "Post created successfully"
	MessagePostDeleted        = "Post deleted successfully"
	MessageEmailRegistered    = "Email address already registered"
	MessageRegistrationFailed = "Registration failed"
	MessageLoginFailed        = "Login failed"
	MessagePostNotFound       = "Post not found"
	MessageNoDeletePermission = "You do not have permission to delete this post"
	MessageCreatePostFailed   = "Failed to create post"
	MessageDeletePostFailed   = "Failed to delete post"
	MessageGetPostsFailed     = "Failed to get posts"
)

// MessageResponse is the body of every response that carries only a
// human-readable message, including all error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public representation of a [User].
// The password is deliberately absent.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// PostResponse is the public representation of a [Post] in listings.
type PostResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// UserEmail is serialized as null when the owner is unknown.
	UserEmail *string `json:"user_email"`
}

// CreatedPost is the reduced post shape embedded in [CreatedPostResponse].
type CreatedPost struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// CreatedPostResponse is returned by a successful post creation.
type CreatedPostResponse struct {
	Message string      `json:"message"`
	Post    CreatedPost `json:"post"`
}

// NewUserResponse projects a stored user onto its public shape.
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:    user.UserID,
		Email: user.Email,
	}
}

// NewPostResponse projects a stored post onto its public shape.
func NewPostResponse(post Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		Timestamp: post.Timestamp.UTC(),
		UserEmail: post.UserEmail,
	}
}

// NewPostResponses projects a list of posts preserving order.
// The result is never nil so that an empty listing encodes as [].
func NewPostResponses(posts []Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, NewPostResponse(post))
	}
	return responses
}

// NewCreatedPostResponse builds the create_post success body.
func NewCreatedPostResponse(post Post) CreatedPostResponse {
	return CreatedPostResponse{
		Message: MessagePostCreated,
		Post: CreatedPost{
			ID:        post.ID,
			Content:   post.Content,
			Timestamp: post.Timestamp.UTC(),
		},
	}
}
