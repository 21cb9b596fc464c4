package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name SubscriptionService --output ../mocks
type SubscriptionService interface {
	GenerateKeys(ctx context.Context, req dto.GenerateLicenseKeysRequest) ([]domain.LicenseKey, error)
	ListKeys(ctx context.Context, filter domain.LicenseKeyFilter) ([]domain.LicenseKey, int64, error)
	RevokeKey(ctx context.Context, id string) (*domain.LicenseKey, error)
	Redeem(ctx context.Context, req dto.RedeemLicenseRequest) (*domain.Subscription, error)
	Current(ctx context.Context) (*domain.Subscription, error)
	List(ctx context.Context, ownerID string, page domain.Pagination) ([]domain.Subscription, int64, error)
}

type SubscriptionHandler struct {
	*BaseHandler
	service SubscriptionService
}

func NewSubscriptionHandler(service SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// Redeem godoc
// @Summary Redeem a license key
// @Description Starts or extends the caller's subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body dto.RedeemLicenseRequest true "License key"
// @Success 201 {object} domain.Subscription
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /subscriptions/redeem [post]
func (h *SubscriptionHandler) Redeem(c *gin.Context) {
	var req dto.RedeemLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	sub, err := h.service.Redeem(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// Current godoc
// @Summary Current subscription
// @Tags subscriptions
// @Produce json
// @Success 200 {object} domain.Subscription
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /subscriptions/current [get]
func (h *SubscriptionHandler) Current(c *gin.Context) {
	sub, err := h.service.Current(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListSubscriptions godoc
// @Summary List subscriptions
// @Description Admins may filter by owner_id; owners always see their own history
// @Tags subscriptions
// @Produce json
// @Param owner_id query string false "Filter by owner (admins only)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Subscription]
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	page := pageFromQuery(c)
	subs, total, err := h.service.List(h.RequestCtx(c), c.Query("owner_id"), page)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(subs, total, page))
}

// GenerateKeys godoc
// @Summary Generate license keys
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.GenerateLicenseKeysRequest true "Plan and count"
// @Success 201 {array} domain.LicenseKey
// @Failure 400 {object} dto.Error
// @Security BearerAuth
// @Router /admin/license-keys [post]
func (h *SubscriptionHandler) GenerateKeys(c *gin.Context) {
	var req dto.GenerateLicenseKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	keys, err := h.service.GenerateKeys(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, keys)
}

// ListKeys godoc
// @Summary List license keys
// @Tags admin
// @Produce json
// @Param status query string false "unused, used or revoked"
// @Param plan query string false "Filter by plan"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.LicenseKey]
// @Security BearerAuth
// @Router /admin/license-keys [get]
func (h *SubscriptionHandler) ListKeys(c *gin.Context) {
	filter := domain.LicenseKeyFilter{
		Pagination: pageFromQuery(c),
		Status:     c.Query("status"),
		Plan:       c.Query("plan"),
	}
	keys, total, err := h.service.ListKeys(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(keys, total, filter.Pagination))
}

// RevokeKey godoc
// @Summary Revoke an unused license key
// @Tags admin
// @Produce json
// @Param id path string true "License key ID"
// @Success 200 {object} domain.LicenseKey
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /admin/license-keys/{id}/revoke [post]
func (h *SubscriptionHandler) RevokeKey(c *gin.Context) {
	key, err := h.service.RevokeKey(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, key)
}
