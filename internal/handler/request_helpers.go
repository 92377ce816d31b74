package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/logger"
)

// MaxRequestBodyBytes bounds a decoded JSON body
const MaxRequestBodyBytes = 1 << 20

// DecodeAndValidateRequest decodes a JSON request body into req and validates its tags.
// If it returns an error the response has already been written and the handler should return.
//
//	var req CreateItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(req); err != nil {
		log.Debug(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter.
// If ok is false the response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// versionParam reads the optional ?version= of a delete. A missing value yields nil,
// which the services reject with a validation error.
func versionParam(r *http.Request, w http.ResponseWriter) (*int, bool) {
	raw := r.URL.Query().Get("version")
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidVersion)
		return nil, false
	}
	return &v, true
}

// pageParam reads the 1-based ?page= of a listing
func pageParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPage)
		return 0, false
	}
	return page, true
}

// callerID is the authenticated user's ID, or "" for anonymous requests
func callerID(r *http.Request) string {
	return auth.UserIDFromContext(r.Context())
}

// urlParam returns a chi route parameter
func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
