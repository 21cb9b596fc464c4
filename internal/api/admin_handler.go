package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name AdminService --output ../mocks
type AdminService interface {
	ListOwners(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, int64, error)
	GetOwner(ctx context.Context, id string) (*domain.Owner, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error)
	Approve(ctx context.Context, id string) (*domain.Owner, error)
	Lock(ctx context.Context, id string) (*domain.Owner, error)
	Unlock(ctx context.Context, id string) (*domain.Owner, error)
}

//go:generate mockery --name SweepRunner --output ../mocks
type SweepRunner interface {
	Run(ctx context.Context) (*dto.SweepResponse, error)
}

type AdminHandler struct {
	*BaseHandler
	service AdminService
	sweep   SweepRunner
}

func NewAdminHandler(service AdminService, sweep SweepRunner) *AdminHandler {
	return &AdminHandler{service: service, sweep: sweep}
}

// ListOwners godoc
// @Summary List owners
// @Tags admin
// @Produce json
// @Param status query string false "pending, active or locked"
// @Param search query string false "Business name or email contains"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Owner]
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /admin/owners [get]
func (h *AdminHandler) ListOwners(c *gin.Context) {
	filter := domain.OwnerFilter{
		Pagination: pageFromQuery(c),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	}
	owners, total, err := h.service.ListOwners(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(owners, total, filter.Pagination))
}

// GetOwner godoc
// @Summary Get an owner
// @Tags admin
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} domain.Owner
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admin/owners/{id} [get]
func (h *AdminHandler) GetOwner(c *gin.Context) {
	owner, err := h.service.GetOwner(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owner)
}

// ApproveOwner godoc
// @Summary Approve a pending owner
// @Tags admin
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} domain.Owner
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /admin/owners/{id}/approve [post]
func (h *AdminHandler) ApproveOwner(c *gin.Context) {
	owner, err := h.service.Approve(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owner)
}

// LockOwner godoc
// @Summary Lock an owner account
// @Tags admin
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} domain.Owner
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admin/owners/{id}/lock [post]
func (h *AdminHandler) LockOwner(c *gin.Context) {
	owner, err := h.service.Lock(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owner)
}

// UnlockOwner godoc
// @Summary Unlock an owner account
// @Tags admin
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} domain.Owner
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admin/owners/{id}/unlock [post]
func (h *AdminHandler) UnlockOwner(c *gin.Context) {
	owner, err := h.service.Unlock(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owner)
}

// ListUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce json
// @Param role query string false "admin, owner or tenant"
// @Param email query string false "Email contains"
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.User]
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filter := domain.UserFilter{
		Pagination: pageFromQuery(c),
		Role:       c.Query("role"),
		Email:      c.Query("email"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "active must be true or false"})
			return
		}
		filter.Active = &active
	}

	users, total, err := h.service.ListUsers(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(users, total, filter.Pagination))
}

// RunSweep godoc
// @Summary Run the billing sweep now
// @Description Flags overdue invoices, sends due reminders and expires ended contracts and subscriptions
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SweepResponse
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /admin/jobs/overdue [post]
func (h *AdminHandler) RunSweep(c *gin.Context) {
	resp, err := h.sweep.Run(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
