package handler

import (
	"net/http"

	"github.com/osse101/InventoryHub_Go/internal/item"
)

// CreateItemRequest is the body of POST /inventories/{id}/items.
// Custom values are keyed by slot name, e.g. "customString1" or "customInt2".
type CreateItemRequest struct {
	Name        string         `json:"name" validate:"required,notblank,max=200"`
	Description string         `json:"description" validate:"max=5000"`
	Custom      map[string]any `json:"customFields"`
	Tags        []string       `json:"tags" validate:"max=20,dive,max=50"`
}

// UpdateItemRequest is the body of PUT /items/{id}
type UpdateItemRequest struct {
	Version     *int           `json:"version"`
	Name        *string        `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string        `json:"description" validate:"omitempty,max=5000"`
	Custom      map[string]any `json:"customFields"`
	Tags        *[]string      `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

// ItemHandler serves inventory items
type ItemHandler struct {
	svc item.Service
}

// NewItemHandler creates an ItemHandler
func NewItemHandler(svc item.Service) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// HandleList lists the items of an inventory
// @Summary List items
// @Tags items
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} Response{data=[]domain.Item}
// @Router /api/v1/inventories/{id}/items [get]
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListItems(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "List items", err)
		return
	}
	respondData(w, http.StatusOK, list)
}

// HandleCreate adds an item to an inventory
// @Summary Create item
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body CreateItemRequest true "Item"
// @Success 201 {object} Response{data=domain.Item}
// @Failure 403 {object} Response
// @Router /api/v1/inventories/{id}/items [post]
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	it, err := h.svc.CreateItem(r.Context(), urlParam(r, "id"), callerID(r), item.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Custom:      req.Custom,
		Tags:        req.Tags,
	})
	if err != nil {
		respondServiceError(w, r, "Create item", err)
		return
	}
	respondData(w, http.StatusCreated, it)
}

// HandleGet returns one item
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} Response{data=domain.Item}
// @Failure 404 {object} Response
// @Router /api/v1/items/{id} [get]
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	it, err := h.svc.GetItem(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "Get item", err)
		return
	}
	respondData(w, http.StatusOK, it)
}

// HandleUpdate applies a versioned item update
// @Summary Update item
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Changes and the version they apply to"
// @Success 200 {object} Response{data=versioning.Outcome}
// @Failure 409 {object} Response "Modified by someone else"
// @Router /api/v1/items/{id} [put]
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	out, err := h.svc.UpdateItem(r.Context(), urlParam(r, "id"), callerID(r), item.UpdateInput{
		Version:     req.Version,
		Name:        req.Name,
		Description: req.Description,
		Custom:      req.Custom,
		Tags:        req.Tags,
	})
	if err != nil {
		respondServiceError(w, r, "Update item", err)
		return
	}
	respondData(w, http.StatusOK, out)
}

// HandleDelete deletes an item
// @Summary Delete item
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Param version query int true "Expected version"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/items/{id} [delete]
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	version, ok := versionParam(r, w)
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(r.Context(), urlParam(r, "id"), callerID(r), version); err != nil {
		respondServiceError(w, r, "Delete item", err)
		return
	}
	respondMessage(w, http.StatusOK, MsgItemDeleted)
}
