package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name CatalogService --output ../mocks
type CatalogService interface {
	Create(ctx context.Context, req dto.ServiceRequest) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, houseID string, page domain.Pagination) ([]domain.Service, int64, error)
	Update(ctx context.Context, id string, req dto.ServiceRequest) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// CatalogHandler serves the billable services (electricity, water, wifi)
// a boarding house offers.
type CatalogHandler struct {
	*BaseHandler
	service CatalogService
}

func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateService godoc
// @Summary Create a billable service
// @Tags services
// @Accept json
// @Produce json
// @Param body body dto.ServiceRequest true "Service"
// @Success 201 {object} domain.Service
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	svc, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// ListServices godoc
// @Summary List billable services
// @Tags services
// @Produce json
// @Param boarding_house_id query string false "Filter by boarding house"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Service]
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	page := pageFromQuery(c)
	services, total, err := h.service.List(h.RequestCtx(c), c.Query("boarding_house_id"), page)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(services, total, page))
}

// GetService godoc
// @Summary Get a billable service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} domain.Service
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// UpdateService godoc
// @Summary Update a billable service
// @Description Price changes apply to invoices created afterwards
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param body body dto.ServiceRequest true "Service"
// @Success 200 {object} domain.Service
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	svc, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// DeleteService godoc
// @Summary Delete a billable service
// @Tags services
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
