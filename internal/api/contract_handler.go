package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name ContractService --output ../mocks
type ContractService interface {
	Create(ctx context.Context, req dto.CreateContractRequest) (*domain.RentalContract, error)
	GetByID(ctx context.Context, id string) (*domain.RentalContract, error)
	List(ctx context.Context, filter domain.ContractFilter) ([]domain.RentalContract, int64, error)
	Update(ctx context.Context, id string, req dto.UpdateContractRequest) (*domain.RentalContract, error)
	Terminate(ctx context.Context, id string) (*domain.RentalContract, error)
}

type ContractHandler struct {
	*BaseHandler
	service ContractService
}

func NewContractHandler(service ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// CreateContract godoc
// @Summary Create a rental contract
// @Description Moves the tenant into the room and updates room occupancy
// @Tags contracts
// @Accept json
// @Produce json
// @Param body body dto.CreateContractRequest true "Contract"
// @Success 201 {object} domain.RentalContract
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	contract, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contract)
}

// ListContracts godoc
// @Summary List rental contracts
// @Tags contracts
// @Produce json
// @Param status query string false "active, expired or terminated"
// @Param room_id query string false "Filter by room"
// @Param tenant_id query string false "Filter by tenant"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.RentalContract]
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	filter := domain.ContractFilter{
		Pagination: pageFromQuery(c),
		Status:     c.Query("status"),
		RoomID:     c.Query("room_id"),
		TenantID:   c.Query("tenant_id"),
	}
	contracts, total, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(contracts, total, filter.Pagination))
}

// GetContract godoc
// @Summary Get a rental contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} domain.RentalContract
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contract)
}

// UpdateContract godoc
// @Summary Update an active rental contract
// @Description Changing room_id transfers the tenant
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param body body dto.UpdateContractRequest true "Fields to change"
// @Success 200 {object} domain.RentalContract
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	contract, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contract)
}

// TerminateContract godoc
// @Summary Terminate a rental contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} domain.RentalContract
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /contracts/{id}/terminate [post]
func (h *ContractHandler) TerminateContract(c *gin.Context) {
	contract, err := h.service.Terminate(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contract)
}
