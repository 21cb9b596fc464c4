package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/pkg/utils"
)

const maxWebhookBytes = 64 << 10

//go:generate mockery --name PaymentService --output ../mocks
type PaymentService interface {
	Record(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	CreateIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	Confirm(ctx context.Context, req dto.ConfirmPaymentRequest) (*domain.Payment, error)
	Webhook(ctx context.Context, payload []byte, signature string) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, int64, error)
}

type PaymentHandler struct {
	*BaseHandler
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RecordPayment godoc
// @Summary Record a cash or bank transfer payment
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.CreatePaymentRequest true "Payment"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	payment, err := h.service.Record(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListPayments godoc
// @Summary List payments
// @Description Tenants only see their own payments
// @Tags payments
// @Produce json
// @Param invoice_id query string false "Filter by invoice"
// @Param tenant_id query string false "Filter by tenant"
// @Param status query string false "pending, succeeded or failed"
// @Param method query string false "cash, bank_transfer or stripe"
// @Param from query string false "Paid at or after (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Paid at or before (RFC3339 or YYYY-MM-DD, whole day)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Payment]
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter, err := paymentFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	payments, total, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(payments, total, filter.Pagination))
}

func paymentFilterFromQuery(c *gin.Context) (domain.PaymentFilter, error) {
	filter := domain.PaymentFilter{
		Pagination: pageFromQuery(c),
		InvoiceID:  c.Query("invoice_id"),
		TenantID:   c.Query("tenant_id"),
		Status:     c.Query("status"),
		Method:     c.Query("method"),
	}
	if from := c.Query("from"); from != "" {
		t, err := utils.ParseUserTime(from, false)
		if err != nil {
			return filter, err
		}
		filter.PaidFrom = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := utils.ParseUserTime(to, true)
		if err != nil {
			return filter, err
		}
		filter.PaidTo = &t
	}
	if filter.PaidFrom != nil && filter.PaidTo != nil && filter.PaidFrom.After(*filter.PaidTo) {
		return filter, errors.New("from must be before to")
	}
	return filter, nil
}

// GetPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// CreateIntent godoc
// @Summary Start an online card payment
// @Description Creates a Stripe payment intent for the outstanding balance of an invoice
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.CreatePaymentIntentRequest true "Invoice"
// @Success 201 {object} dto.PaymentIntentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /payments/intents [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.CreateIntent(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ConfirmPayment godoc
// @Summary Confirm an online payment
// @Description Polls Stripe for the intent status and settles the payment when it succeeded
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.ConfirmPaymentRequest true "Payment intent"
// @Success 200 {object} domain.Payment
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /payments/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	payment, err := h.service.Confirm(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// Webhook godoc
// @Summary Stripe webhook
// @Description Receives payment intent events. The body must be the raw signed payload.
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.Error
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "failed to read body"})
		return
	}

	if err := h.service.Webhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "received"})
}
