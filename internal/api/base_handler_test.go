package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/bhms-api/internal/middleware"
	"github.com/kingrain94/bhms-api/internal/service"
	"github.com/kingrain94/bhms-api/internal/service/storage"
	"github.com/kingrain94/bhms-api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators("VN"); err != nil {
		panic(err)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrRoomNotFound, http.StatusNotFound},
		{"conflict", service.ErrRoomHasTenants, http.StatusConflict},
		{"forbidden", service.ErrOwnerLocked, http.StatusForbidden},
		{"validation", service.ErrInvalidMonth, http.StatusBadRequest},
		{"bad image", storage.ErrInvalidImage, http.StatusBadRequest},
		{"payment required", service.ErrRoomLimitReached, http.StatusPaymentRequired},
		{"unauthorized", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing claims", utils.ErrNoOwnerIDInClaims, http.StatusUnauthorized},
		{"wrapped", fmt.Errorf("failed to create tenant: %w", service.ErrEmailAlreadyExists), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	(&BaseHandler{}).RespondError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestRespondError_ShowsDomainErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	(&BaseHandler{}).RespondError(c, service.ErrRoomFull)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"room is at capacity: conflict"}`, w.Body.String())
}

func TestPageFromQuery(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/rooms?page=3&page_size=500", nil)

	page := pageFromQuery(c)

	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 200, page.PageSize)
	assert.Equal(t, 400, page.Offset)
}
