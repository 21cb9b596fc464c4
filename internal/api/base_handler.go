package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service"
	"github.com/kingrain94/bhms-api/internal/service/storage"
	"github.com/kingrain94/bhms-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RespondError writes err with the status code of its sentinel family.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), dto.Error{Error: messageFor(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrValidation), errors.Is(err, storage.ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, utils.ErrNoClaimsInContext),
		errors.Is(err, utils.ErrNoOwnerIDInClaims),
		errors.Is(err, utils.ErrNoTenantIDInClaims),
		errors.Is(err, utils.ErrNoUserIDInClaims):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides internal error details behind a generic message.
func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

// pageFromQuery reads page and page_size, falling back to defaults.
func pageFromQuery(c *gin.Context) domain.Pagination {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("page_size"))
	p := domain.Pagination{Page: page, PageSize: size}
	p.Normalize()
	return p
}
