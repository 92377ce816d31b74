package handler

import (
	"net/http"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/field"
)

// CreateFieldRequest is the body of POST /inventories/{id}/fields
type CreateFieldRequest struct {
	FieldType        string `json:"fieldType" validate:"required,field_type"`
	Name             string `json:"name" validate:"required,notblank,max=100"`
	Description      string `json:"description" validate:"max=500"`
	IsRequired       bool   `json:"isRequired"`
	IsVisibleInTable bool   `json:"isVisibleInTable"`
}

// UpdateFieldRequest is the body of PUT /fields/{fieldId}
type UpdateFieldRequest struct {
	Name             *string `json:"name" validate:"omitempty,notblank,max=100"`
	Description      *string `json:"description" validate:"omitempty,max=500"`
	IsRequired       *bool   `json:"isRequired"`
	IsVisibleInTable *bool   `json:"isVisibleInTable"`
}

// FieldHandler serves custom field definitions
type FieldHandler struct {
	svc field.Service
}

// NewFieldHandler creates a FieldHandler
func NewFieldHandler(svc field.Service) *FieldHandler {
	return &FieldHandler{svc: svc}
}

// HandleList lists an inventory's custom fields in slot order
// @Summary List custom fields
// @Tags fields
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} Response{data=[]domain.FieldConfig}
// @Router /api/v1/inventories/{id}/fields [get]
func (h *FieldHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListFields(r.Context(), urlParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, "List fields", err)
		return
	}
	respondData(w, http.StatusOK, list)
}

// HandleCreate defines a new custom field in the next free slot
// @Summary Create custom field
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body CreateFieldRequest true "Field definition"
// @Success 201 {object} Response{data=domain.FieldConfig}
// @Failure 400 {object} Response "No free slot of this type"
// @Router /api/v1/inventories/{id}/fields [post]
func (h *FieldHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateFieldRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create field"); err != nil {
		return
	}

	f, err := h.svc.CreateField(r.Context(), urlParam(r, "id"), callerID(r), field.CreateInput{
		FieldType:        req.FieldType,
		Name:             req.Name,
		Description:      req.Description,
		IsRequired:       req.IsRequired,
		IsVisibleInTable: req.IsVisibleInTable,
	})
	if err != nil {
		respondServiceError(w, r, "Create field", err)
		return
	}
	respondData(w, http.StatusCreated, f)
}

// HandleUpdate changes a custom field definition
// @Summary Update custom field
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param fieldId path string true "Field ID"
// @Param request body UpdateFieldRequest true "Changes"
// @Success 200 {object} Response{data=domain.FieldConfig}
// @Router /api/v1/fields/{fieldId} [put]
func (h *FieldHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateFieldRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update field"); err != nil {
		return
	}

	f, err := h.svc.UpdateField(r.Context(), urlParam(r, "fieldId"), callerID(r), domain.FieldConfigPatch{
		Name:             req.Name,
		Description:      req.Description,
		IsRequired:       req.IsRequired,
		IsVisibleInTable: req.IsVisibleInTable,
	})
	if err != nil {
		respondServiceError(w, r, "Update field", err)
		return
	}
	respondData(w, http.StatusOK, f)
}

// HandleDelete removes a custom field definition
// @Summary Delete custom field
// @Tags fields
// @Security BearerAuth
// @Produce json
// @Param fieldId path string true "Field ID"
// @Success 200 {object} Response
// @Router /api/v1/fields/{fieldId} [delete]
func (h *FieldHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteField(r.Context(), urlParam(r, "fieldId"), callerID(r)); err != nil {
		respondServiceError(w, r, "Delete field", err)
		return
	}
	respondMessage(w, http.StatusOK, MsgFieldDeleted)
}
