package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getPosts", err, models.MessageGetPostsFailed)
		return
	}

	utils.WriteJSON(w, models.NewPostResponses(posts), http.StatusOK)
}

// createPost stores a post owned by the authenticated user. The owner comes
// from the token; a user_id in the body is ignored.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, "*Handler.createPost", ErrNoAuthenticatedUser, models.MessageCreatePostFailed)
		return
	}

	var request models.CreatePostRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.createPost", err, models.MessageCreatePostFailed)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, models.Post{
		UserID:  userID,
		Content: request.Content,
	})
	if err != nil {
		writeError(w, r, "*Handler.createPost", err, models.MessageCreatePostFailed)
		return
	}

	log.Debug().Int64("post_id", post.ID).Int64("user_id", userID).Msg("post created")

	utils.WriteJSON(w, models.NewCreatedPostResponse(post), http.StatusCreated)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, "*Handler.deletePost", ErrNoAuthenticatedUser, models.MessageDeletePostFailed)
		return
	}

	rawID := chi.URLParam(r, "id")
	postID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, r, "*Handler.deletePost", fmt.Errorf("%w: %q", ErrInvalidPostID, rawID), models.MessageDeletePostFailed)
		return
	}

	if err = h.services.PostService.DeletePost(ctx, postID, userID); err != nil {
		writeError(w, r, "*Handler.deletePost", err, models.MessageDeletePostFailed)
		return
	}

	log.Debug().Int64("post_id", postID).Int64("user_id", userID).Msg("post deleted")

	utils.WriteMessage(w, models.MessagePostDeleted, http.StatusOK)
}
