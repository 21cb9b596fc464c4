package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service"
)

//go:generate mockery --name InvoiceService --output ../mocks
type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	Generate(ctx context.Context, req dto.GenerateInvoicesRequest) (*dto.GenerateInvoicesResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, int64, error)
	ListMine(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, int64, error)
	GetMine(ctx context.Context, id string) (*domain.Invoice, error)
	Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	Cancel(ctx context.Context, id string) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, month string, format service.ExportFormat) ([]byte, string, error)
}

type InvoiceHandler struct {
	*BaseHandler
	service InvoiceService
}

func NewInvoiceHandler(service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func invoiceFilterFromQuery(c *gin.Context) domain.InvoiceFilter {
	return domain.InvoiceFilter{
		Pagination:      pageFromQuery(c),
		BoardingHouseID: c.Query("boarding_house_id"),
		RoomID:          c.Query("room_id"),
		TenantID:        c.Query("tenant_id"),
		BillingMonth:    c.Query("billing_month"),
		Status:          c.Query("status"),
	}
}

// CreateInvoice godoc
// @Summary Create an invoice for one room
// @Description Prices the room charge and attached services for a billing month
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} domain.Invoice
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoice, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GenerateInvoices godoc
// @Summary Generate invoices for a boarding house
// @Description Creates one invoice per occupied room. Rooms already invoiced for the month are skipped.
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body dto.GenerateInvoicesRequest true "Boarding house and month"
// @Success 201 {object} dto.GenerateInvoicesResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /invoices/generate [post]
func (h *InvoiceHandler) GenerateInvoices(c *gin.Context) {
	var req dto.GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Generate(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param boarding_house_id query string false "Filter by boarding house"
// @Param room_id query string false "Filter by room"
// @Param tenant_id query string false "Filter by tenant"
// @Param billing_month query string false "YYYY-MM"
// @Param status query string false "unpaid, partially_paid, paid, overdue or cancelled"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Invoice]
// @Failure 400 {object} dto.Error
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := invoiceFilterFromQuery(c)
	invoices, total, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(invoices, total, filter.Pagination))
}

// GetInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice godoc
// @Summary Update an unpaid invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param body body dto.UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoice, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// CancelInvoice godoc
// @Summary Cancel an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /invoices/{id}/cancel [post]
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	invoice, err := h.service.Cancel(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice godoc
// @Summary Delete an invoice without payments
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportInvoices godoc
// @Summary Export invoices of a billing month
// @Tags invoices
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string true "Billing month (YYYY-MM)"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} dto.Error
// @Security BearerAuth
// @Router /invoices/export [get]
func (h *InvoiceHandler) ExportInvoices(c *gin.Context) {
	month := c.Query("month")
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportCSV)))
	if format != service.ExportCSV && format != service.ExportXLSX {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid format. Must be 'csv' or 'xlsx'"})
		return
	}

	body, contentType, err := h.service.Export(h.RequestCtx(c), month, format)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoices_%s.%s", month, format))
	c.Data(http.StatusOK, contentType, body)
}

// ListMyInvoices godoc
// @Summary List the calling tenant's invoices
// @Tags me
// @Produce json
// @Param billing_month query string false "YYYY-MM"
// @Param status query string false "Invoice status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Invoice]
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /me/invoices [get]
func (h *InvoiceHandler) ListMyInvoices(c *gin.Context) {
	filter := invoiceFilterFromQuery(c)
	invoices, total, err := h.service.ListMine(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(invoices, total, filter.Pagination))
}

// GetMyInvoice godoc
// @Summary Get one of the calling tenant's invoices
// @Tags me
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /me/invoices/{id} [get]
func (h *InvoiceHandler) GetMyInvoice(c *gin.Context) {
	invoice, err := h.service.GetMine(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}
