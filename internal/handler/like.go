package handler

import (
	"net/http"

	"github.com/osse101/InventoryHub_Go/internal/like"
)

// LikeHandler serves item likes
type LikeHandler struct {
	svc like.Service
}

// NewLikeHandler creates a LikeHandler
func NewLikeHandler(svc like.Service) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// HandleInfo returns the like count, whether the caller liked the item and the latest likers
// @Summary Item likes
// @Tags likes
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} Response{data=domain.LikeInfo}
// @Router /api/v1/items/{id}/likes [get]
func (h *LikeHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Info(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "Get likes", err)
		return
	}
	respondData(w, http.StatusOK, info)
}

// HandleLike likes an item
// @Summary Like item
// @Tags likes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} Response{data=domain.LikeInfo}
// @Failure 400 {object} Response "Already liked"
// @Router /api/v1/items/{id}/likes [post]
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Like(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "Like item", err)
		return
	}
	respondData(w, http.StatusOK, info)
}

// HandleUnlike removes the caller's like
// @Summary Unlike item
// @Tags likes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} Response{data=domain.LikeInfo}
// @Router /api/v1/items/{id}/likes [delete]
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Unlike(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "Unlike item", err)
		return
	}
	respondData(w, http.StatusOK, info)
}
