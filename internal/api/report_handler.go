package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name ReportService --output ../mocks
type ReportService interface {
	Create(ctx context.Context, req dto.CreateReportRequest) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, id string, req dto.UpdateReportRequest) (*domain.Report, error)
	CreateAdmin(ctx context.Context, req dto.CreateAdminReportRequest) (*domain.ReportAdmin, error)
	ListAdmin(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportAdmin, int64, error)
	GetAdmin(ctx context.Context, id string) (*domain.ReportAdmin, error)
	RespondAdmin(ctx context.Context, id string, req dto.UpdateReportRequest) (*domain.ReportAdmin, error)
}

// ReportHandler serves tenant reports to owners and owner reports to admins.
type ReportHandler struct {
	*BaseHandler
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func reportFilterFromQuery(c *gin.Context) domain.ReportFilter {
	return domain.ReportFilter{
		Pagination: pageFromQuery(c),
		OwnerID:    c.Query("owner_id"),
		TenantID:   c.Query("tenant_id"),
		Status:     c.Query("status"),
	}
}

// CreateReport godoc
// @Summary File a report to the owner
// @Tags reports
// @Accept json
// @Produce json
// @Param body body dto.CreateReportRequest true "Report"
// @Success 201 {object} domain.Report
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	report, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports godoc
// @Summary List tenant reports
// @Tags reports
// @Produce json
// @Param tenant_id query string false "Filter by tenant"
// @Param status query string false "pending, in_progress or resolved"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Report]
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	filter := reportFilterFromQuery(c)
	reports, total, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(reports, total, filter.Pagination))
}

// GetReport godoc
// @Summary Get a tenant report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} domain.Report
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateReport godoc
// @Summary Respond to a tenant report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param body body dto.UpdateReportRequest true "Status and response"
// @Success 200 {object} domain.Report
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	report, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// CreateAdminReport godoc
// @Summary File a report to the platform admins
// @Tags admin-reports
// @Accept json
// @Produce json
// @Param body body dto.CreateAdminReportRequest true "Report"
// @Success 201 {object} domain.ReportAdmin
// @Failure 400 {object} dto.Error
// @Security BearerAuth
// @Router /admin-reports [post]
func (h *ReportHandler) CreateAdminReport(c *gin.Context) {
	var req dto.CreateAdminReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	report, err := h.service.CreateAdmin(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListAdminReports godoc
// @Summary List owner reports
// @Description Admins see every report, owners only their own
// @Tags admin-reports
// @Produce json
// @Param owner_id query string false "Filter by owner (admins only)"
// @Param status query string false "pending, in_progress or resolved"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.ReportAdmin]
// @Security BearerAuth
// @Router /admin-reports [get]
func (h *ReportHandler) ListAdminReports(c *gin.Context) {
	filter := reportFilterFromQuery(c)
	reports, total, err := h.service.ListAdmin(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(reports, total, filter.Pagination))
}

// GetAdminReport godoc
// @Summary Get an owner report
// @Tags admin-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} domain.ReportAdmin
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admin-reports/{id} [get]
func (h *ReportHandler) GetAdminReport(c *gin.Context) {
	report, err := h.service.GetAdmin(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RespondAdminReport godoc
// @Summary Respond to an owner report
// @Tags admin-reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param body body dto.UpdateReportRequest true "Status and response"
// @Success 200 {object} domain.ReportAdmin
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admin-reports/{id} [put]
func (h *ReportHandler) RespondAdminReport(c *gin.Context) {
	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	report, err := h.service.RespondAdmin(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
