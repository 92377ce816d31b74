package handler

import (
	"net/http"
)

// GrantRequest is the body of POST /inventories/{id}/grants
type GrantRequest struct {
	UserID string `json:"userId" validate:"required,notblank"`
	Level  string `json:"level" validate:"required,access_level"`
}

// HandleListGrants lists the explicit grants of an inventory
// @Summary List grants
// @Tags grants
// @Security BearerAuth
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} Response{data=[]domain.InventoryAccess}
// @Failure 403 {object} Response
// @Router /api/v1/inventories/{id}/grants [get]
func (h *InventoryHandler) HandleListGrants(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListGrants(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "List grants", err)
		return
	}
	respondData(w, http.StatusOK, list)
}

// HandleGrant creates or changes a user's grant
// @Summary Grant access
// @Tags grants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body GrantRequest true "User and level"
// @Success 200 {object} Response{data=domain.InventoryAccess}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/v1/inventories/{id}/grants [post]
func (h *InventoryHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	var req GrantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant access"); err != nil {
		return
	}

	grant, err := h.svc.Grant(r.Context(), urlParam(r, "id"), callerID(r), req.UserID, req.Level)
	if err != nil {
		respondServiceError(w, r, "Grant access", err)
		return
	}
	respondData(w, http.StatusOK, grant)
}

// HandleRevoke removes a user's grant
// @Summary Revoke access
// @Tags grants
// @Security BearerAuth
// @Produce json
// @Param id path string true "Inventory ID"
// @Param userId path string true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/inventories/{id}/grants/{userId} [delete]
func (h *InventoryHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Revoke(r.Context(), urlParam(r, "id"), callerID(r), urlParam(r, "userId")); err != nil {
		respondServiceError(w, r, "Revoke access", err)
		return
	}
	respondMessage(w, http.StatusOK, MsgAccessRevoked)
}
