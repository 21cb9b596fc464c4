package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name DashboardService --output ../mocks
type DashboardService interface {
	Owner(ctx context.Context) (*domain.OwnerDashboard, error)
	Admin(ctx context.Context) (*domain.AdminDashboard, error)
}

type DashboardHandler struct {
	*BaseHandler
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// OwnerDashboard godoc
// @Summary Owner dashboard
// @Description Occupancy, this month's billing and twelve months of revenue
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.OwnerDashboard
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) OwnerDashboard(c *gin.Context) {
	dashboard, err := h.service.Owner(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// AdminDashboard godoc
// @Summary Platform dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} domain.AdminDashboard
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	dashboard, err := h.service.Admin(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
