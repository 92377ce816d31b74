package handler

import (
	"net/http"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/inventory"
)

// CreateInventoryRequest is the body of POST /inventories
type CreateInventoryRequest struct {
	Name        string   `json:"name" validate:"required,notblank,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"max=100"`
	IsPublic    bool     `json:"isPublic"`
	Tags        []string `json:"tags" validate:"max=20,dive,max=50"`
}

// UpdateInventoryRequest is the body of PUT /inventories/{id}. Absent fields are left untouched.
type UpdateInventoryRequest struct {
	Version     *int      `json:"version"`
	Name        *string   `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=5000"`
	Category    *string   `json:"category" validate:"omitempty,max=100"`
	IsPublic    *bool     `json:"isPublic"`
	Tags        *[]string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

// VisibilityRequest is the body of PATCH /inventories/{id}/visibility
type VisibilityRequest struct {
	IsPublic *bool `json:"isPublic" validate:"required"`
	Version  *int  `json:"version"`
}

// AccessSummary describes the caller's access to an inventory
type AccessSummary struct {
	AccessLevel    domain.AccessLevel `json:"accessLevel"`
	IsOwner        bool               `json:"isOwner"`
	HasReadAccess  bool               `json:"hasReadAccess"`
	HasWriteAccess bool               `json:"hasWriteAccess"`
}

func newAccessSummary(res access.Result) AccessSummary {
	return AccessSummary{
		AccessLevel:    res.Level,
		IsOwner:        res.IsOwner,
		HasReadAccess:  res.HasReadAccess(),
		HasWriteAccess: res.HasWriteAccess(),
	}
}

// InventoryView is an inventory with the caller's access to it
type InventoryView struct {
	*domain.Inventory
	Access AccessSummary `json:"access"`
}

// InventoryHandler serves inventories, listings and taxonomy
type InventoryHandler struct {
	svc inventory.Service
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// HandleCreate creates an inventory owned by the caller
// @Summary Create inventory
// @Tags inventories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateInventoryRequest true "Inventory"
// @Success 201 {object} Response{data=domain.Inventory}
// @Failure 400 {object} Response
// @Router /api/v1/inventories [post]
func (h *InventoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create inventory"); err != nil {
		return
	}

	inv, err := h.svc.CreateInventory(r.Context(), callerID(r), inventory.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
		Tags:        req.Tags,
	})
	if err != nil {
		respondServiceError(w, r, "Create inventory", err)
		return
	}
	respondData(w, http.StatusCreated, inv)
}

// HandleGet returns an inventory and counts the view
// @Summary Get inventory
// @Tags inventories
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} Response{data=InventoryView}
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/inventories/{id} [get]
func (h *InventoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetInventory(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "Get inventory", err)
		return
	}
	respondData(w, http.StatusOK, InventoryView{Inventory: view.Inventory, Access: newAccessSummary(view.Access)})
}

// HandleUpdate applies a versioned owner update
// @Summary Update inventory
// @Tags inventories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body UpdateInventoryRequest true "Changes and the version they apply to"
// @Success 200 {object} Response{data=versioning.Outcome}
// @Failure 409 {object} Response "Modified by someone else"
// @Router /api/v1/inventories/{id} [put]
func (h *InventoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateInventoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update inventory"); err != nil {
		return
	}

	out, err := h.svc.UpdateInventory(r.Context(), urlParam(r, "id"), callerID(r), inventory.UpdateInput{
		Version:     req.Version,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
		Tags:        req.Tags,
	})
	if err != nil {
		respondServiceError(w, r, "Update inventory", err)
		return
	}
	respondData(w, http.StatusOK, out)
}

// HandleSetVisibility switches an inventory between public and private
// @Summary Set visibility
// @Tags inventories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body VisibilityRequest true "Visibility and version"
// @Success 200 {object} Response{data=versioning.Outcome}
// @Router /api/v1/inventories/{id}/visibility [patch]
func (h *InventoryHandler) HandleSetVisibility(w http.ResponseWriter, r *http.Request) {
	var req VisibilityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set visibility"); err != nil {
		return
	}

	out, err := h.svc.SetVisibility(r.Context(), urlParam(r, "id"), callerID(r), *req.IsPublic, req.Version)
	if err != nil {
		respondServiceError(w, r, "Set visibility", err)
		return
	}
	respondData(w, http.StatusOK, out)
}

// HandleDelete deletes an inventory and everything in it
// @Summary Delete inventory
// @Tags inventories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Inventory ID"
// @Param version query int true "Expected version"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/inventories/{id} [delete]
func (h *InventoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	version, ok := versionParam(r, w)
	if !ok {
		return
	}
	if err := h.svc.DeleteInventory(r.Context(), urlParam(r, "id"), callerID(r), version); err != nil {
		respondServiceError(w, r, "Delete inventory", err)
		return
	}
	respondMessage(w, http.StatusOK, MsgInventoryDeleted)
}

// HandleAccess reports the caller's access level
// @Summary Caller access
// @Tags inventories
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} Response{data=AccessSummary}
// @Router /api/v1/inventories/{id}/access [get]
func (h *InventoryHandler) HandleAccess(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetAccess(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "Get access", err)
		return
	}
	respondData(w, http.StatusOK, newAccessSummary(res))
}

// HandleListOwned lists the caller's inventories
// @Summary My inventories
// @Tags inventories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response{data=[]domain.InventorySummary}
// @Router /api/v1/me/inventories [get]
func (h *InventoryHandler) HandleListOwned(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListOwned(r.Context(), callerID(r))
	if err != nil {
		respondServiceError(w, r, "List owned inventories", err)
		return
	}
	respondData(w, http.StatusOK, list)
}

// HandleListShared lists inventories shared with the caller
// @Summary Inventories shared with me
// @Tags inventories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response{data=[]domain.InventorySummary}
// @Router /api/v1/me/accessible-inventories [get]
func (h *InventoryHandler) HandleListShared(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListShared(r.Context(), callerID(r))
	if err != nil {
		respondServiceError(w, r, "List shared inventories", err)
		return
	}
	respondData(w, http.StatusOK, list)
}

// HandleListPublic lists public inventories, or searches them when q is given
// @Summary Public inventories
// @Tags inventories
// @Produce json
// @Param type query string false "recent or popular"
// @Param page query int false "1-based page of the recent listing"
// @Param q query string false "Full-text search"
// @Success 200 {object} Response{data=[]domain.InventorySummary}
// @Router /api/v1/inventories/public [get]
func (h *InventoryHandler) HandleListPublic(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		list, err := h.svc.SearchPublic(r.Context(), q)
		if err != nil {
			respondServiceError(w, r, "Search public inventories", err)
			return
		}
		respondData(w, http.StatusOK, list)
		return
	}

	page, ok := pageParam(r, w)
	if !ok {
		return
	}
	list, err := h.svc.ListPublic(r.Context(), GetOptionalQueryParam(r, "type", string(domain.PublicSortRecent)), page)
	if err != nil {
		respondServiceError(w, r, "List public inventories", err)
		return
	}
	respondData(w, http.StatusOK, list)
}

// HandleCategories lists the inventory categories
// @Summary Categories
// @Tags taxonomy
// @Produce json
// @Success 200 {object} Response{data=[]domain.Category}
// @Router /api/v1/categories [get]
func (h *InventoryHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, r, "List categories", err)
		return
	}
	respondData(w, http.StatusOK, list)
}

// HandleTags suggests tags starting with a prefix
// @Summary Tag autocomplete
// @Tags taxonomy
// @Produce json
// @Param prefix query string false "Tag prefix"
// @Success 200 {object} Response{data=[]domain.Tag}
// @Router /api/v1/tags [get]
func (h *InventoryHandler) HandleTags(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.SuggestTags(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		respondServiceError(w, r, "Suggest tags", err)
		return
	}
	respondData(w, http.StatusOK, list)
}
