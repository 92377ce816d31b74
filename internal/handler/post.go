package handler

import (
	"net/http"

	"github.com/osse101/InventoryHub_Go/internal/discussion"
)

// CreatePostRequest is the body of POST /inventories/{id}/posts.
// Content limits are enforced by the discussion service.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// PostHandler serves the discussion history and post creation
type PostHandler struct {
	svc discussion.Service
}

// NewPostHandler creates a PostHandler
func NewPostHandler(svc discussion.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// HandleList returns the recent posts of an inventory, oldest first
// @Summary Discussion history
// @Tags discussion
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} Response{data=[]domain.Post}
// @Router /api/v1/inventories/{id}/posts [get]
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "List posts", err)
		return
	}
	respondData(w, http.StatusOK, posts)
}

// HandleCreate adds a post and fans it out to connected subscribers
// @Summary Create post
// @Tags discussion
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body CreatePostRequest true "Post"
// @Success 201 {object} Response{data=domain.Post}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/v1/inventories/{id}/posts [post]
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create post"); err != nil {
		return
	}

	post, err := h.svc.CreatePost(r.Context(), urlParam(r, "id"), callerID(r), req.Content)
	if err != nil {
		respondServiceError(w, r, "Create post", err)
		return
	}
	respondData(w, http.StatusCreated, post)
}
