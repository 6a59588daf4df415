package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-scaler/internal/pkg/common"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		debug      bool
		wantStatus int
		wantCode   string
		wantMsg    string
		wantDetail string
	}{
		{"custom error", common.ErrInvalidMultiplier, false, http.StatusBadRequest, common.ErrCodeInvalidMultiplier, "multiplier out of range", ""},
		{"wrapped custom error", fmt.Errorf("parse: %w", common.ErrTooManyRequests), false, http.StatusTooManyRequests, common.ErrCodeTooManyRequests, "too many requests", ""},
		{"validation", common.NewValidationError("bad line"), false, http.StatusBadRequest, common.ErrCodeInvalidRequest, "bad line", ""},
		{"deadline", context.DeadlineExceeded, false, http.StatusGatewayTimeout, common.ErrCodeGatewayTimeout, "request timeout", ""},
		{"unknown hides details", errors.New("boom"), false, http.StatusInternalServerError, common.ErrCodeInternalError, "internal server error", ""},
		{"unknown debug details", errors.New("boom"), true, http.StatusInternalServerError, common.ErrCodeInternalError, "internal server error", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tt.err, tt.debug)

			assert.True(t, c.IsAborted())
			require.Equal(t, tt.wantStatus, w.Code)

			var resp common.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.wantDetail, resp.Details)
		})
	}
}
