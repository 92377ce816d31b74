package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"already liked", domain.ErrAlreadyLiked, http.StatusBadRequest, domain.ErrMsgAlreadyLiked},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, domain.ErrMsgEmailTaken},
		{"slots exhausted", domain.ErrSlotsExhausted, http.StatusBadRequest, domain.ErrMsgSlotsExhausted},
		{"wrapped duplicate", fmt.Errorf("create field: %w", domain.ErrSlotsExhausted), http.StatusBadRequest, domain.ErrMsgSlotsExhausted},
		{"version conflict", domain.ErrVersionConflict, http.StatusConflict, domain.ErrMsgVersionConflict},
		{"not found", domain.ErrItemNotFound, http.StatusNotFound, domain.ErrMsgItemNotFound},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondServiceError(w, httptest.NewRequest(http.MethodGet, "/", nil), "Test", tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
